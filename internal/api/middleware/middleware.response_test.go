package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"retail_sales/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONResponse_SetsCharset(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return JSONResponse(c, fiber.StatusOK, fiber.Map{"message": "Thao tác thành công"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestHandleErrorResponse_CustomError(t *testing.T) {
	app := fiber.New()
	app.Get("/err", func(c fiber.Ctx) error {
		HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Dữ liệu không hợp lệ", fiber.StatusBadRequest, nil))
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "Dữ liệu không hợp lệ", payload["message"])
}

func TestHandleErrorResponse_UnknownErrorFallsBackTo500(t *testing.T) {
	app := fiber.New()
	app.Get("/err", func(c fiber.Ctx) error {
		HandleErrorResponse(c, errors.New("có lỗi bất ngờ"))
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
