package validate

import (
	"cinebook/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body[model.LoginInput]("Login")
}

func RegisterCustomer() fiber.Handler {
	return body[model.RegisterCustomerInput]("RegisterCustomer")
}

func CustomerLogin() fiber.Handler {
	return body[model.CustomerLoginInput]("CustomerLogin")
}

func ForgotPassword() fiber.Handler {
	return body[model.ForgotPasswordInput]("ForgotPassword")
}

func ResetPassword() fiber.Handler {
	return body[model.ResetPasswordInput]("ResetPassword")
}
