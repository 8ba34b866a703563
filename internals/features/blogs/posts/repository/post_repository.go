package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	adminModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

const orderByPublished = "published_at DESC NULLS LAST, id DESC"

type PostRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.BlogPostModel, error)
	ListPublished(ctx context.Context, limit, offset int) ([]model.BlogPostModel, error)
	GetByID(ctx context.Context, id uint) (*model.BlogPostModel, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPostModel, error)
	Search(ctx context.Context, q string, limit, offset int) ([]model.BlogPostModel, error)
	Create(ctx context.Context, p *model.BlogPostModel) (*model.BlogPostModel, error)
	Update(ctx context.Context, p *model.BlogPostModel, fields []string) (*model.BlogPostModel, error)
	Delete(ctx context.Context, p *model.BlogPostModel) error
	AuthorExists(ctx context.Context, id uint) (bool, error)
	CountPublished(ctx context.Context) (int64, error)

	Transaction(ctx context.Context, fn func(PostRepository) error) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("Author")
}

func (r *postRepository) page(ctx context.Context, order string, limit, offset int, query string, args ...any) ([]model.BlogPostModel, error) {
	q := withAuthor(r.db.WithContext(ctx))
	if query != "" {
		q = q.Where(query, args...)
	}
	var rows []model.BlogPostModel
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return rows, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]model.BlogPostModel, error) {
	return r.page(ctx, "id DESC", limit, offset, "")
}

func (r *postRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.BlogPostModel, error) {
	return r.page(ctx, orderByPublished, limit, offset, "status = ?", model.StatusPublished)
}

// Search matches q case-insensitively in title, summary or content. Blank q
// matches nothing.
func (r *postRepository) Search(ctx context.Context, q string, limit, offset int) ([]model.BlogPostModel, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.BlogPostModel{}, nil
	}
	p := helper.LikePattern(q)
	return r.page(ctx, orderByPublished, limit, offset,
		"title ILIKE ? OR summary ILIKE ? OR content ILIKE ?", p, p, p)
}

func take(db *gorm.DB, query string, arg any) (*model.BlogPostModel, error) {
	var p model.BlogPostModel
	err := withAuthor(db).Where(query, arg).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.BlogPostModel, error) {
	return take(r.db.WithContext(ctx), "blog_posts.id = ?", id)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPostModel, error) {
	return take(r.db.WithContext(ctx), "slug = ?", slug)
}

func (r *postRepository) Create(ctx context.Context, p *model.BlogPostModel) (*model.BlogPostModel, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Author").Create(p).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return take(db, "blog_posts.id = ?", p.ID)
}

func (r *postRepository) Update(ctx context.Context, p *model.BlogPostModel, fields []string) (*model.BlogPostModel, error) {
	db := r.db.WithContext(ctx)
	if len(fields) > 0 {
		if err := db.Model(p).Select(fields).Updates(p).Error; err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
	}
	return take(db, "blog_posts.id = ?", p.ID)
}

func (r *postRepository) Delete(ctx context.Context, p *model.BlogPostModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.BlogPostModel{}, p.ID).Error; err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (r *postRepository) AuthorExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adminModel.AdminModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *postRepository) CountPublished(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BlogPostModel{}).Where("status = ?", model.StatusPublished).Count(&n).Error
	return n, err
}

func (r *postRepository) Transaction(ctx context.Context, fn func(PostRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&postRepository{db: tx})
	})
}
