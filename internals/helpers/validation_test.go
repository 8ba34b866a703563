package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
}

func bind(t *testing.T, body string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req bindRequest
		if err := BindJSON(c, &req); err != nil {
			return JsonAppError(c, err)
		}
		return JsonOK(c, fiber.Map{"name": req.Name})
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestBindJSON(t *testing.T) {
	status, out := bind(t, `{"name":"Ada"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Ada", out["name"])

	status, out = bind(t, `{}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "No data provided", out["error"])

	status, _ = bind(t, `{"name":`)
	assert.Equal(t, 400, status)

	status, out = bind(t, `{"name":"   ","email":"nope"}`)
	assert.Equal(t, 422, status)
	assert.Equal(t, "validation_error", out["error"])
	details := out["details"].(map[string]any)
	assert.Equal(t, []any{"notblank"}, details["name"])
	assert.Equal(t, []any{"email"}, details["email"])
}
