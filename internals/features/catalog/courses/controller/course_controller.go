package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/constants"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/dto"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]dto.CourseListDTO, error)
	ListPastCourses(ctx context.Context) ([]dto.CourseDTO, error)
	ListUpcomingCourses(ctx context.Context) ([]dto.CourseDTO, error)
	SearchCourses(ctx context.Context, q string) ([]dto.CourseListDTO, error)
	GetCourse(ctx context.Context, id uint) (dto.CourseDTO, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (dto.CourseDTO, error)
	UpdateCourse(ctx context.Context, id uint, req dto.UpdateCourseRequest) (dto.CourseDTO, error)
	DeleteCourse(ctx context.Context, id uint) (dto.DeletedCourseDTO, error)
}

type CourseController struct {
	Svc CourseService
}

func NewCourseController(svc CourseService) *CourseController {
	return &CourseController{Svc: svc}
}

// GET /courses
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	items, err := ctrl.Svc.ListCourses(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "courses", items)
}

// GET /courses/past
func (ctrl *CourseController) ListPast(c *fiber.Ctx) error {
	items, err := ctrl.Svc.ListPastCourses(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "courses", items)
}

// GET /courses/upcoming
func (ctrl *CourseController) ListUpcoming(c *fiber.Ctx) error {
	items, err := ctrl.Svc.ListUpcomingCourses(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "courses", items)
}

// GET /courses/search?q=
func (ctrl *CourseController) Search(c *fiber.Ctx) error {
	items, err := ctrl.Svc.SearchCourses(c.UserContext(), c.Query("q"))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "courses", items)
}

// GET /courses/:id answers a missing course with the generic "Not found".
func (ctrl *CourseController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.GetCourse(c.UserContext(), id)
	if apperr.Is(err, apperr.KindNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgNotFound)
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

// POST /courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.CreateCourse(c.UserContext(), body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, item)
}

// PUT /courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var body dto.UpdateCourseRequest
	if err := helper.BindJSON(c, &body); err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := ctrl.Svc.UpdateCourse(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, item)
}

// DELETE /courses/:id
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := ctrl.Svc.DeleteCourse(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, out)
}
