package services

import (
	"pinboard/app/models"
	"pinboard/app/repositories"

	"github.com/google/uuid"
)

// PostService handles the post lifecycle over a PostRepository.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost validates the input, assembles a post bound to the
// creator's token and inserts it.
func (s *PostService) CreatePost(in models.CreatePost, token string) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post := models.NewPost(in, token)
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by id
func (s *PostService) GetPost(id uuid.UUID) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// ListPosts retrieves all posts in insertion order.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.repo.List()
}

// UpdatePost overwrites the supplied non-empty fields of an existing
// post and advances its update timestamp. Validation happens before the
// stored record is touched, so a failed update leaves the post as it was.
func (s *PostService) UpdatePost(id uuid.UUID, in models.UpdatePost) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Apply(in)
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post by id
func (s *PostService) DeletePost(id uuid.UUID) error {
	return s.repo.Delete(id)
}
