package handler

import (
	"cinebook/config"
	"cinebook/constants"
	"cinebook/database"
	"cinebook/helper"
	"cinebook/model"
	"cinebook/utils"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func RegisterCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerInput, ok := c.Locals("RegisterCustomer").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetCustomerByEmail(customerInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered", nil)
	}

	hashed, err := helper.HashPassword(customerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newCustomer model.Customer
	copier.Copy(&newCustomer, &customerInput)
	newCustomer.Password = hashed

	if err := db.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create customer", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":       newCustomer.ID,
		"fullName": newCustomer.FullName,
		"email":    newCustomer.Email,
	})
}

func CustomerLogin(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("CustomerLogin").(model.CustomerLoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	customer, err := helper.GetCustomerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil || !helper.CheckPasswordHash(loginInput.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Wrong email or password", errors.New("bad credentials"))
	}

	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.Email,
		Role:       constants.ROLE_CUSTOMER,
	}

	access, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refresh, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customer": fiber.Map{
			"id":       customer.ID,
			"fullName": customer.FullName,
			"email":    customer.Email,
		},
		"tokens": model.TokenData{AccessToken: access, RefreshToken: refresh},
	})
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("ForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		// Do not reveal whether the address exists.
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the address exists, a reset link was sent"})
	}

	token := uuid.New().String()
	resetToken := model.PasswordResetToken{
		CustomerId: customer.ID,
		Token:      token,
		ExpiresAt:  time.Now().Add(30 * time.Minute),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.ConfigOr("APP_URL", "http://localhost:5173"), token)

	// Send in the background; the response must not depend on whether
	// the address exists or the mail went out.
	go func(to string) {
		e := email.NewEmail()
		e.From = config.ConfigOr("SMTP_FROM", "CineBook <no-reply@cinebook.local>")
		e.To = []string{to}
		e.Subject = "Password reset"
		e.Text = []byte(fmt.Sprintf("Click the link to reset your password: %s", resetLink))
		smtpAddr := fmt.Sprintf("%s:%s", config.Config("SMTP_HOST"), config.ConfigOr("SMTP_PORT", "587"))
		if err := e.Send(smtpAddr, smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), config.Config("SMTP_HOST"))); err != nil {
			log.Printf("send reset mail: %v", err)
		}
	}(customer.Email)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "If the address exists, a reset link was sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("ResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token", err)
	}

	var customer model.Customer
	if err := db.First(&customer, resetToken.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&customer).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	db.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
