package dto

import (
	"time"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/model"
)

type AuthorDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

type PostDTO struct {
	ID          uint       `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     *string    `json:"summary"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	Author      AuthorDTO  `json:"author"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreatePostRequest: slug is derived from the title when omitted, and
// author_id defaults to the calling admin.
type CreatePostRequest struct {
	Slug        *string    `json:"slug" validate:"omitempty,max=160"`
	Title       string     `json:"title" validate:"required,notblank,max=160"`
	Summary     *string    `json:"summary" validate:"omitempty,max=300"`
	Content     string     `json:"content" validate:"required,notblank"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    uint       `json:"author_id" validate:"omitempty,gt=0"`
}

type UpdatePostRequest struct {
	Slug        *string    `json:"slug" validate:"omitempty,max=160"`
	Title       *string    `json:"title" validate:"omitempty,notblank,max=160"`
	Summary     *string    `json:"summary" validate:"omitempty,max=300"`
	Content     *string    `json:"content" validate:"omitempty,notblank"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    *uint      `json:"author_id" validate:"omitempty,gt=0"`
}

func ToPostDTO(m *model.BlogPostModel) PostDTO {
	return PostDTO{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Summary:     m.Summary,
		Content:     m.Content,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
		Author:      AuthorDTO{ID: m.AuthorID, FullName: m.Author.FullName},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostDTOs(rows []model.BlogPostModel) []PostDTO {
	out := make([]PostDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToPostDTO(&rows[i]))
	}
	return out
}
