package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// ValidationError reports the fields that violated their constraints.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid value for " + strings.Join(e.Fields, ", ")
}

// asValidationError converts validator output into a ValidationError.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

// Validate checks the creation constraints.
func (in CreatePost) Validate() error {
	if err := validate.Struct(in); err != nil {
		return asValidationError(err)
	}
	return nil
}

// Validate checks the supplied fields; empty fields are skipped.
func (in UpdatePost) Validate() error {
	if err := validate.Struct(in); err != nil {
		return asValidationError(err)
	}
	return nil
}

// NewPost assembles a fresh Post from validated creation input. A random
// id is allocated, both timestamps are stamped with the same instant and
// the creator's token is bound.
func NewPost(in CreatePost, token string) *Post {
	now := time.Now()
	return &Post{
		ID:        uuid.New(),
		Author:    in.Author,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
		Token:     token,
	}
}

// Apply overwrites the post's fields with the non-empty fields of in and
// advances UpdatedAt. Input must have been validated first.
func (p *Post) Apply(in UpdatePost) {
	if in.Author != "" {
		p.Author = in.Author
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	p.UpdatedAt = time.Now()
}

// View projects the post into its public shape.
func (p *Post) View() PostView {
	return PostView{
		ID:        p.ID,
		Author:    p.Author,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Local().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Local().Format(time.RFC3339),
	}
}
