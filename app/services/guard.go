package services

import (
	"pinboard/app/models"
	"pinboard/app/repositories"

	"github.com/google/uuid"
)

// AuthGuard decides whether a caller may mutate a post. It is a plain
// pre-condition check invoked ahead of the mutating operation: it
// resolves the post and compares tokens, and performs no mutation.
type AuthGuard struct {
	repo repositories.PostRepository
}

// NewAuthGuard creates a new AuthGuard
func NewAuthGuard(repo repositories.PostRepository) *AuthGuard {
	return &AuthGuard{repo: repo}
}

// Authorize resolves the post and checks ownership. Existence is
// checked first: an unknown id is ErrNotFound regardless of the token,
// and ErrForbidden is only returned for a post that exists. An empty
// presented token never matches. On success the resolved post is
// returned so the caller needs no second lookup.
func (g *AuthGuard) Authorize(id uuid.UUID, token string) (*models.Post, error) {
	post, err := g.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if token == "" || token != post.Token {
		return nil, ErrForbidden
	}
	return post, nil
}
