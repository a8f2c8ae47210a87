package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents one bulletin-board entry. Token is the creator's
// secret; it is excluded from JSON so it can never leak into a response.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Token     string    `json:"-"`
}

// CreatePost carries the fields required to create a post.
type CreatePost struct {
	Author  string `json:"author" validate:"required,min=1,max=20"`
	Title   string `json:"title" validate:"required,min=5,max=50"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePost carries a partial set of post fields. An empty field means
// "leave unchanged"; only supplied values are validated.
type UpdatePost struct {
	Author  string `json:"author" validate:"omitempty,min=1,max=20"`
	Title   string `json:"title" validate:"omitempty,min=5,max=50"`
	Content string `json:"content" validate:"omitempty,min=1"`
}

// PostView is the public projection of a Post: the same fields minus
// the token, with timestamps rendered in local-offset RFC 3339 form.
type PostView struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// PostList is the envelope returned by the list endpoint.
type PostList struct {
	Count int        `json:"count"`
	Items []PostView `json:"items"`
}
