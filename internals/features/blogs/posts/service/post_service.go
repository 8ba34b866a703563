package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/repository"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

const (
	MsgPostNotFound = "Post not found"
	MsgSlugExists   = "Slug already exists"

	DefaultLimit = 100
	MaxLimit     = 500

	maxSlugLen = 160
)

type PostService struct {
	repo repository.PostRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{
		repo: repo,
		now:  time.Now,
		log:  log.With().Str("component", "blog").Logger(),
	}
}

// WithClock overrides the publish stamp source, for tests.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

func (s *PostService) get(ctx context.Context, id uint) (*model.BlogPostModel, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound(MsgPostNotFound)
	}
	return p, nil
}

func checkSlug(slug string) error {
	if !helper.IsSlug(slug) {
		return apperr.Validation("slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

func (s *PostService) slugTaken(ctx context.Context, selfID uint, slug string) error {
	other, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.Conflict(MsgSlugExists)
	}
	return nil
}

func (s *PostService) checkAuthor(ctx context.Context, id uint) error {
	ok, err := s.repo.AuthorExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Validation("author_id %d does not exist", id)
	}
	return nil
}

// stampPublished fills published_at the first time a post is published.
func (s *PostService) stampPublished(p *model.BlogPostModel) bool {
	if p.Status == model.StatusPublished && p.PublishedAt == nil {
		t := s.now().UTC()
		p.PublishedAt = &t
		return true
	}
	return false
}

func (s *PostService) List(ctx context.Context, paging helper.Paging) ([]dto.PostDTO, error) {
	rows, err := s.repo.List(ctx, paging.Limit, paging.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToPostDTOs(rows), nil
}

func (s *PostService) ListPublished(ctx context.Context, paging helper.Paging) ([]dto.PostDTO, error) {
	rows, err := s.repo.ListPublished(ctx, paging.Limit, paging.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToPostDTOs(rows), nil
}

func (s *PostService) Search(ctx context.Context, q string, paging helper.Paging) ([]dto.PostDTO, error) {
	rows, err := s.repo.Search(ctx, q, paging.Limit, paging.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToPostDTOs(rows), nil
}

func (s *PostService) Get(ctx context.Context, id uint) (dto.PostDTO, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return dto.PostDTO{}, err
	}
	return dto.ToPostDTO(p), nil
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (dto.PostDTO, error) {
	p, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return dto.PostDTO{}, err
	}
	if p == nil {
		return dto.PostDTO{}, apperr.NotFound(MsgPostNotFound)
	}
	return dto.ToPostDTO(p), nil
}

func (s *PostService) Create(ctx context.Context, req dto.CreatePostRequest) (dto.PostDTO, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return dto.PostDTO{}, apperr.Validation("title cannot be empty")
	}
	if req.AuthorID == 0 {
		return dto.PostDTO{}, apperr.Validation("author_id is required")
	}

	slug := helper.Slugify(title, maxSlugLen)
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slug = strings.TrimSpace(*req.Slug)
		if err := checkSlug(slug); err != nil {
			return dto.PostDTO{}, err
		}
	}
	if err := s.slugTaken(ctx, 0, slug); err != nil {
		return dto.PostDTO{}, err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return dto.PostDTO{}, err
	}

	p := &model.BlogPostModel{
		Slug:        slug,
		Title:       title,
		Summary:     req.Summary,
		Content:     req.Content,
		Status:      model.StatusDraft,
		PublishedAt: req.PublishedAt,
		AuthorID:    req.AuthorID,
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	s.stampPublished(p)

	var created *model.BlogPostModel
	err := s.repo.Transaction(ctx, func(tx repository.PostRepository) error {
		var err error
		created, err = tx.Create(ctx, p)
		return err
	})
	if database.IsUniqueViolation(err) {
		return dto.PostDTO{}, apperr.Wrap(apperr.KindConflict, err, MsgSlugExists)
	}
	if database.IsForeignKeyViolation(err) {
		return dto.PostDTO{}, apperr.Wrap(apperr.KindValidation, err, "author_id %d does not exist", req.AuthorID)
	}
	if err != nil {
		return dto.PostDTO{}, err
	}
	s.log.Info().Uint("id", created.ID).Str("slug", created.Slug).Msg("post created")
	return dto.ToPostDTO(created), nil
}

func (s *PostService) Update(ctx context.Context, id uint, req dto.UpdatePostRequest) (dto.PostDTO, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return dto.PostDTO{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return dto.PostDTO{}, apperr.Validation("title cannot be empty")
		}
		req.Title = &title
	}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if err := checkSlug(slug); err != nil {
			return dto.PostDTO{}, err
		}
		req.Slug = &slug
		if slug != p.Slug {
			if err := s.slugTaken(ctx, p.ID, slug); err != nil {
				return dto.PostDTO{}, err
			}
		}
	}
	if req.AuthorID != nil && *req.AuthorID != p.AuthorID {
		if err := s.checkAuthor(ctx, *req.AuthorID); err != nil {
			return dto.PostDTO{}, err
		}
	}

	fields, err := helper.MergePatch(p, req)
	if err != nil {
		return dto.PostDTO{}, err
	}
	if len(fields) == 0 {
		return dto.ToPostDTO(p), nil
	}
	if s.stampPublished(p) {
		fields = append(fields, "PublishedAt")
	}

	var updated *model.BlogPostModel
	err = s.repo.Transaction(ctx, func(tx repository.PostRepository) error {
		var err error
		updated, err = tx.Update(ctx, p, fields)
		return err
	})
	if database.IsUniqueViolation(err) {
		return dto.PostDTO{}, apperr.Wrap(apperr.KindConflict, err, MsgSlugExists)
	}
	if err != nil {
		return dto.PostDTO{}, err
	}
	return dto.ToPostDTO(updated), nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Transaction(ctx, func(tx repository.PostRepository) error {
		return tx.Delete(ctx, p)
	}); err != nil {
		return err
	}
	s.log.Info().Uint("id", id).Msg("post deleted")
	return nil
}
