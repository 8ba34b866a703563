// Package admintest has an in-memory AdminRepository for service and
// controller tests.
package admintest

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository"
)

type Fake struct {
	Admins map[uint]*model.AdminModel
	// Authors marks admins that still own blog posts; deleting them fails
	// the way the FK RESTRICT does.
	Authors map[uint]bool

	LastFields []string
	nextID     uint
}

func New() *Fake {
	return &Fake{Admins: map[uint]*model.AdminModel{}, Authors: map[uint]bool{}}
}

// Seed stores a copy of a and returns its id.
func (f *Fake) Seed(a model.AdminModel) uint {
	f.nextID++
	if a.ID == 0 {
		a.ID = f.nextID
	}
	f.Admins[a.ID] = &a
	return a.ID
}

func (f *Fake) List(_ context.Context, limit, offset int) ([]model.AdminModel, error) {
	rows := make([]model.AdminModel, 0, len(f.Admins))
	for _, a := range f.Admins {
		rows = append(rows, *a)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	if offset >= len(rows) {
		return []model.AdminModel{}, nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *Fake) GetByID(_ context.Context, id uint) (*model.AdminModel, error) {
	if a, ok := f.Admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *Fake) GetByEmail(_ context.Context, email string) (*model.AdminModel, error) {
	for _, a := range f.Admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *Fake) Create(_ context.Context, a *model.AdminModel) error {
	for _, other := range f.Admins {
		if other.Email == a.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.Admins[a.ID] = &cp
	return nil
}

func (f *Fake) Update(_ context.Context, a *model.AdminModel, fields []string) error {
	f.LastFields = fields
	cp := *a
	f.Admins[a.ID] = &cp
	return nil
}

func (f *Fake) Delete(_ context.Context, a *model.AdminModel) error {
	if f.Authors[a.ID] {
		return gorm.ErrForeignKeyViolated
	}
	delete(f.Admins, a.ID)
	return nil
}

func (f *Fake) Transaction(_ context.Context, fn func(repository.AdminRepository) error) error {
	return fn(f)
}
