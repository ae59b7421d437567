package validate

import (
	"cinebook/model"

	"github.com/gofiber/fiber/v2"
)

func CreateShow() fiber.Handler {
	return body[model.CreateShowInput]("CreateShow")
}
