package model

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func parseQuery[T any](t *testing.T, target string) T {
	t.Helper()

	app := fiber.New()
	var got T
	app.Get("/", func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.QueryParser(input); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		got = *input
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestFilterOrderInput_ParsesQuery(t *testing.T) {
	got := parseQuery[FilterOrderInput](t, "/?showId=3&status=READY&limit=10&page=2")

	assert.Equal(t, uint(3), got.ShowId)
	assert.Equal(t, "READY", got.Status)
	assert.NotNil(t, got.Limit)
	assert.Equal(t, 10, *got.Limit)
	assert.NotNil(t, got.Page)
	assert.Equal(t, 2, *got.Page)
}

func TestFilterMovieInput_ParsesQuery(t *testing.T) {
	got := parseQuery[FilterMovieInput](t, "/?genre=Action&status=NOW_SHOWING")

	assert.Equal(t, "Action", got.Genre)
	assert.Equal(t, "NOW_SHOWING", got.Status)
	assert.Nil(t, got.Limit)
}

func TestFilterShowInput_ParsesQuery(t *testing.T) {
	got := parseQuery[FilterShowInput](t, "/?movieId=7&status=SCHEDULED")

	assert.Equal(t, uint(7), got.MovieId)
	assert.Equal(t, "SCHEDULED", got.Status)
}

func TestFilterSnackInput_ParsesQuery(t *testing.T) {
	got := parseQuery[FilterSnackInput](t, "/?category=COMBO&page=1")

	assert.Equal(t, "COMBO", got.Category)
	assert.NotNil(t, got.Page)
	assert.Equal(t, 1, *got.Page)
}
