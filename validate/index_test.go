package validate

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cinebook/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetById_NumericParam(t *testing.T) {
	app := fiber.New()
	app.Get("/movie/:movieId", GetById("movieId"), func(c *fiber.Ctx) error {
		assert.Equal(t, 42, c.Locals("inputId").(int))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/movie/42", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetById_RejectsNonNumeric(t *testing.T) {
	app := fiber.New()
	handlerHit := false
	app.Get("/movie/:movieId", GetById("movieId"), func(c *fiber.Ctx) error {
		handlerHit = true
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/movie/not-a-number", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, handlerHit)
}

func TestBody_ValidInputReachesLocals(t *testing.T) {
	app := fiber.New()
	app.Post("/snack", CreateSnack(), func(c *fiber.Ctx) error {
		input := c.Locals("CreateSnack").(model.CreateSnackInput)
		assert.Equal(t, "Cola (L)", input.Name)
		assert.Equal(t, model.SnackCategoryDrink, input.Category)
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/snack",
		strings.NewReader(`{"name":"Cola (L)","price":80,"category":"DRINK"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestBody_InvalidInputRejected(t *testing.T) {
	app := fiber.New()
	app.Post("/snack", CreateSnack(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	// Category outside the allowed set.
	req := httptest.NewRequest("POST", "/snack",
		strings.NewReader(`{"name":"Cola","price":80,"category":"FOOD"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Category")
}
