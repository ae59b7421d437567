package validate

import (
	"cinebook/model"

	"github.com/gofiber/fiber/v2"
)

func CreateSnack() fiber.Handler {
	return body[model.CreateSnackInput]("CreateSnack")
}
