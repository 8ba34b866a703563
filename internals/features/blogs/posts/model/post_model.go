package model

import (
	"time"

	adminModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type BlogPostModel struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	Slug        string     `gorm:"column:slug;type:varchar(160);uniqueIndex;not null"`
	Title       string     `gorm:"column:title;type:varchar(160);not null"`
	Summary     *string    `gorm:"column:summary;type:varchar(300)"`
	Content     string     `gorm:"column:content;type:text;not null"`
	Status      string     `gorm:"column:status;type:varchar(16);not null;default:draft"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	AuthorID    uint       `gorm:"column:author_id;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Author adminModel.AdminModel `gorm:"foreignKey:AuthorID;references:ID"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
