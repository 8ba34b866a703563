// Package coursetest has an in-memory CourseRepository for service and
// controller tests.
package coursetest

import (
	"context"
	"sort"
	"strings"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/repository"
	instructorModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/instructors/model"
	lookupModel "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/dbtime"
)

type Fake struct {
	Courses       map[uint]*model.CourseModel
	DeliveryModes map[uint]lookupModel.DeliveryMode
	Venues        map[uint]bool
	Instructors   map[uint]instructorModel.InstructorModel

	LastPatch repository.CoursePatch
	nextID    uint
}

func New() *Fake {
	return &Fake{
		Courses:       map[uint]*model.CourseModel{},
		DeliveryModes: map[uint]lookupModel.DeliveryMode{1: {ID: 1, Label: "Online"}},
		Venues:        map[uint]bool{},
		Instructors:   map[uint]instructorModel.InstructorModel{},
	}
}

func (f *Fake) all(keep func(*model.CourseModel) bool, less func(a, b *model.CourseModel) bool) []model.CourseModel {
	var rows []*model.CourseModel
	for _, c := range f.Courses {
		if keep(c) {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	out := make([]model.CourseModel, 0, len(rows))
	for _, c := range rows {
		out = append(out, *c)
	}
	return out
}

func start(c *model.CourseModel) *dbtime.Date {
	if c.StartDate == nil {
		return nil
	}
	d := dbtime.Date(*c.StartDate)
	return &d
}

func end(c *model.CourseModel) *dbtime.Date {
	if c.EndDate == nil {
		return nil
	}
	d := dbtime.Date(*c.EndDate)
	return &d
}

// descNullsLast orders a before b when a's date is later; nil dates sort last.
func descNullsLast(a, b *dbtime.Date, ida, idb uint) bool {
	switch {
	case a == nil && b == nil:
		return ida > idb
	case a == nil:
		return false
	case b == nil:
		return true
	case a.Time().Equal(b.Time()):
		return ida > idb
	default:
		return a.After(*b)
	}
}

func (f *Fake) List(context.Context) ([]model.CourseModel, error) {
	return f.all(
		func(*model.CourseModel) bool { return true },
		func(a, b *model.CourseModel) bool { return descNullsLast(end(a), end(b), a.ID, b.ID) },
	), nil
}

func (f *Fake) GetByID(_ context.Context, id uint) (*model.CourseModel, error) {
	c, ok := f.Courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *Fake) ListPast(_ context.Context, today dbtime.Date) ([]model.CourseModel, error) {
	return f.all(
		func(c *model.CourseModel) bool { e := end(c); return e != nil && e.Before(today) },
		func(a, b *model.CourseModel) bool { return descNullsLast(end(a), end(b), a.ID, b.ID) },
	), nil
}

func (f *Fake) ListUpcoming(_ context.Context, today dbtime.Date) ([]model.CourseModel, error) {
	return f.all(
		func(c *model.CourseModel) bool { s := start(c); return s != nil && s.After(today) },
		func(a, b *model.CourseModel) bool {
			sa, sb := start(a), start(b)
			if sa.Time().Equal(sb.Time()) {
				return a.ID < b.ID
			}
			return sa.Before(*sb)
		},
	), nil
}

func (f *Fake) Search(_ context.Context, q string) ([]model.CourseModel, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []model.CourseModel{}, nil
	}
	return f.all(
		func(c *model.CourseModel) bool { return strings.Contains(strings.ToLower(c.Title), q) },
		func(a, b *model.CourseModel) bool { return descNullsLast(start(a), start(b), a.ID, b.ID) },
	), nil
}

func (f *Fake) resolve(ids []uint) ([]instructorModel.InstructorModel, error) {
	out := []instructorModel.InstructorModel{}
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		m, ok := f.Instructors[id]
		if !ok {
			return nil, apperr.Validation(repository.MsgInstructorsNotFound)
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *Fake) Create(_ context.Context, c *model.CourseModel, instructorIDs []uint) (*model.CourseModel, error) {
	instructors, err := f.resolve(instructorIDs)
	if err != nil {
		return nil, err
	}
	f.nextID++
	c.ID = f.nextID
	c.Instructors = instructors
	c.DeliveryMode = f.DeliveryModes[c.DeliveryModeID]
	f.Courses[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *Fake) Update(_ context.Context, c *model.CourseModel, patch repository.CoursePatch) (*model.CourseModel, error) {
	f.LastPatch = patch
	if patch.InstructorIDs != nil {
		instructors, err := f.resolve(*patch.InstructorIDs)
		if err != nil {
			return nil, err
		}
		c.Instructors = instructors
	}
	c.DeliveryMode = f.DeliveryModes[c.DeliveryModeID]
	f.Courses[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *Fake) Delete(_ context.Context, c *model.CourseModel) error {
	delete(f.Courses, c.ID)
	return nil
}

func (f *Fake) DeliveryModeExists(_ context.Context, id uint) (bool, error) {
	_, ok := f.DeliveryModes[id]
	return ok, nil
}

func (f *Fake) VenueExists(_ context.Context, id uint) (bool, error) {
	return f.Venues[id], nil
}

func (f *Fake) CountPast(ctx context.Context, today dbtime.Date) (int64, error) {
	rows, err := f.ListPast(ctx, today)
	return int64(len(rows)), err
}

func (f *Fake) CountUpcoming(ctx context.Context, today dbtime.Date) (int64, error) {
	rows, err := f.ListUpcoming(ctx, today)
	return int64(len(rows)), err
}

func (f *Fake) Transaction(_ context.Context, fn func(repository.CourseRepository) error) error {
	return fn(f)
}
