package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/model"
	instructorModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	venueModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/venues/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/dbtime"
)

const (
	orderByEndDate   = "end_date DESC NULLS LAST, id DESC"
	orderByStartDesc = "start_date DESC NULLS LAST, id DESC"
	orderByStartAsc  = "start_date ASC, id ASC"

	MsgInstructorsNotFound = "One or more instructor IDs were not found."
)

// CoursePatch names the CourseModel fields already merged onto the row.
// A non-nil InstructorIDs replaces the instructor set.
type CoursePatch struct {
	Fields        []string
	InstructorIDs *[]uint
}

type CourseRepository interface {
	List(ctx context.Context) ([]model.CourseModel, error)
	GetByID(ctx context.Context, id uint) (*model.CourseModel, error)
	ListPast(ctx context.Context, today dbtime.Date) ([]model.CourseModel, error)
	ListUpcoming(ctx context.Context, today dbtime.Date) ([]model.CourseModel, error)
	Search(ctx context.Context, q string) ([]model.CourseModel, error)
	Create(ctx context.Context, c *model.CourseModel, instructorIDs []uint) (*model.CourseModel, error)
	Update(ctx context.Context, c *model.CourseModel, patch CoursePatch) (*model.CourseModel, error)
	Delete(ctx context.Context, c *model.CourseModel) error

	DeliveryModeExists(ctx context.Context, id uint) (bool, error)
	VenueExists(ctx context.Context, id uint) (bool, error)
	CountPast(ctx context.Context, today dbtime.Date) (int64, error)
	CountUpcoming(ctx context.Context, today dbtime.Date) (int64, error)

	Transaction(ctx context.Context, fn func(CourseRepository) error) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// withRelations eager-loads the graph every course response needs.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DeliveryMode").
		Preload("Venue").
		Preload("Instructors", func(db *gorm.DB) *gorm.DB {
			return db.Order("instructors.full_name ASC, instructors.id ASC")
		})
}

func (r *courseRepository) find(ctx context.Context, order string, query string, args ...any) ([]model.CourseModel, error) {
	q := withRelations(r.db.WithContext(ctx))
	if query != "" {
		q = q.Where(query, args...)
	}
	var rows []model.CourseModel
	if err := q.Order(order).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return rows, nil
}

// List orders by end_date descending with undated courses last.
func (r *courseRepository) List(ctx context.Context) ([]model.CourseModel, error) {
	return r.find(ctx, orderByEndDate, "")
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*model.CourseModel, error) {
	return getByID(withRelations(r.db.WithContext(ctx)), id)
}

func getByID(db *gorm.DB, id uint) (*model.CourseModel, error) {
	var c model.CourseModel
	err := db.Where("courses.id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

// ListPast returns courses that ended strictly before today.
func (r *courseRepository) ListPast(ctx context.Context, today dbtime.Date) ([]model.CourseModel, error) {
	return r.find(ctx, orderByEndDate, "end_date IS NOT NULL AND end_date < ?", today)
}

// ListUpcoming returns courses that start after today, soonest first.
func (r *courseRepository) ListUpcoming(ctx context.Context, today dbtime.Date) ([]model.CourseModel, error) {
	return r.find(ctx, orderByStartAsc, "start_date IS NOT NULL AND start_date > ?", today)
}

// Search is a case-insensitive title substring match. Blank q matches nothing.
func (r *courseRepository) Search(ctx context.Context, q string) ([]model.CourseModel, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.CourseModel{}, nil
	}
	return r.find(ctx, orderByStartDesc, "title ILIKE ?", helper.LikePattern(q))
}

// resolveInstructors loads every requested instructor or fails as a whole.
func resolveInstructors(tx *gorm.DB, ids []uint) ([]instructorModel.InstructorModel, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []instructorModel.InstructorModel{}, nil
	}
	var rows []instructorModel.InstructorModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("resolve instructors: %w", err)
	}
	if len(rows) != len(ids) {
		return nil, apperr.Validation(MsgInstructorsNotFound)
	}
	return rows, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Create inserts the course and its instructor links in one transaction
// and returns the row reloaded with relations.
func (r *courseRepository) Create(ctx context.Context, c *model.CourseModel, instructorIDs []uint) (*model.CourseModel, error) {
	var out *model.CourseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		instructors, err := resolveInstructors(tx, instructorIDs)
		if err != nil {
			return err
		}
		c.Instructors = instructors
		if err := tx.Omit("DeliveryMode", "Venue", "Instructors.*").Create(c).Error; err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		out, err = getByID(withRelations(tx), c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes patch.Fields and, when asked, swaps the instructor set.
func (r *courseRepository) Update(ctx context.Context, c *model.CourseModel, patch CoursePatch) (*model.CourseModel, error) {
	var out *model.CourseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(patch.Fields) > 0 {
			if err := tx.Model(c).Select(patch.Fields).Updates(c).Error; err != nil {
				return fmt.Errorf("update course: %w", err)
			}
		}
		if patch.InstructorIDs != nil {
			instructors, err := resolveInstructors(tx, *patch.InstructorIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(c).Association("Instructors").Replace(instructors); err != nil {
				return fmt.Errorf("replace course instructors: %w", err)
			}
		}
		var err error
		out, err = getByID(withRelations(tx), c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepository) Delete(ctx context.Context, c *model.CourseModel) error {
	if err := r.db.WithContext(ctx).Delete(&model.CourseModel{}, c.ID).Error; err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (r *courseRepository) exists(ctx context.Context, m any, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *courseRepository) DeliveryModeExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &lookupModel.DeliveryMode{}, id)
}

func (r *courseRepository) VenueExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &venueModel.VenueModel{}, id)
}

func (r *courseRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CourseModel{}).Where(query, args...).Count(&n).Error
	return n, err
}

func (r *courseRepository) CountPast(ctx context.Context, today dbtime.Date) (int64, error) {
	return r.count(ctx, "end_date IS NOT NULL AND end_date < ?", today)
}

func (r *courseRepository) CountUpcoming(ctx context.Context, today dbtime.Date) (int64, error) {
	return r.count(ctx, "start_date IS NOT NULL AND start_date > ?", today)
}

func (r *courseRepository) Transaction(ctx context.Context, fn func(CourseRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&courseRepository{db: tx})
	})
}
