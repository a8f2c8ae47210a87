package repositories

import (
	"errors"

	"pinboard/app/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no post has the requested id.
var ErrNotFound = errors.New("post not found")

// PostRepository defines the interface for post data access. List
// returns posts in insertion order.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id uuid.UUID) error
}
