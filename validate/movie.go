package validate

import (
	"cinebook/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return body[model.CreateMovieInput]("CreateMovie")
}
