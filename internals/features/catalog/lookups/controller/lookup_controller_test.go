package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/lookups/model"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
)

type stubService struct {
	items      []dto.LookupDTO
	lastParams helper.ListParams
	createErr  error
	deleteErr  error
}

func (s *stubService) Kind() model.Kind { return model.DeliveryModeKind }

func (s *stubService) Get(_ context.Context, id uint) (dto.LookupDTO, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return dto.LookupDTO{}, apperr.NotFound("DeliveryMode %d not found", id)
}

func (s *stubService) List(_ context.Context, p helper.ListParams) ([]dto.LookupDTO, error) {
	s.lastParams = p
	return s.items, nil
}

func (s *stubService) Create(_ context.Context, req dto.CreateLookupRequest) (dto.LookupDTO, error) {
	if s.createErr != nil {
		return dto.LookupDTO{}, s.createErr
	}
	return dto.LookupDTO{ID: 3, Label: req.Label}, nil
}

func (s *stubService) Update(_ context.Context, id uint, req dto.UpdateLookupRequest) (dto.LookupDTO, error) {
	out := dto.LookupDTO{ID: id}
	if req.Label != nil {
		out.Label = *req.Label
	}
	return out, nil
}

func (s *stubService) Delete(_ context.Context, id uint) error {
	return s.deleteErr
}

func newApp(svc LookupService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewLookupController(svc)
	app.Get("/delivery-modes", ctrl.List)
	app.Get("/delivery-modes/:id", ctrl.Get)
	app.Post("/delivery-modes", ctrl.Create)
	app.Patch("/delivery-modes/:id", ctrl.Update)
	app.Delete("/delivery-modes/:id", ctrl.Delete)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestList_UsesKindDefaultsAndWrapsItems(t *testing.T) {
	svc := &stubService{items: []dto.LookupDTO{{ID: 1, Label: "Online"}}}
	app := newApp(svc)

	status, body := do(t, app, "GET", "/delivery-modes?q=on", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"items":[{"id":1,"label":"Online","description":null}]}`, body)
	assert.Equal(t, "on", svc.lastParams.Q)
	assert.Equal(t, "label", svc.lastParams.Sort)
	assert.Equal(t, "asc", svc.lastParams.Direction)
}

func TestList_EmptyRendersEmptyArray(t *testing.T) {
	status, body := do(t, newApp(&stubService{}), "GET", "/delivery-modes", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"items":[]}`, body)
}

func TestGet_NotFoundAndBadID(t *testing.T) {
	app := newApp(&stubService{})

	status, body := do(t, app, "GET", "/delivery-modes/5", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"DeliveryMode 5 not found"}`, body)

	status, _ = do(t, app, "GET", "/delivery-modes/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreate(t *testing.T) {
	app := newApp(&stubService{})

	status, body := do(t, app, "POST", "/delivery-modes", `{"label":"Hybrid"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"id":3,"label":"Hybrid","description":null}`, body)

	status, body = do(t, app, "POST", "/delivery-modes", ``)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"No data provided"}`, body)

	status, body = do(t, app, "POST", "/delivery-modes", `{"label":"  "}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"error":"validation_error","details":{"label":["notblank"]}}`, body)
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	app := newApp(&stubService{createErr: apperr.AlreadyExists("DeliveryMode with label='Online' already exists")})

	status, body := do(t, app, "POST", "/delivery-modes", `{"label":"Online"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.JSONEq(t, `{"error":"DeliveryMode with label='Online' already exists"}`, body)
}

func TestUpdateAndDelete(t *testing.T) {
	app := newApp(&stubService{})

	status, body := do(t, app, "PATCH", "/delivery-modes/4", `{"label":"Remote"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":4,"label":"Remote","description":null}`, body)

	status, _ = do(t, app, "DELETE", "/delivery-modes/4", "")
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestDelete_ReferencedIsConflict(t *testing.T) {
	app := newApp(&stubService{deleteErr: apperr.Conflict("DeliveryMode 1 is still referenced")})

	status, _ := do(t, app, "DELETE", "/delivery-modes/1", "")
	assert.Equal(t, fiber.StatusConflict, status)
}
