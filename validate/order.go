package validate

import (
	"cinebook/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.CreateOrderInput]("CreateOrder")
}

func UpdateOrderStatus() fiber.Handler {
	return body[model.UpdateOrderStatusInput]("UpdateOrderStatus")
}
