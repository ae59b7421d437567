package model

import "time"

// Account is a back-office identity. Customers live in their own table.
type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;size:50;not null" validate:"required" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:'ADMIN'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type Customer struct {
	DTO
	FullName string `gorm:"size:100" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:100;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

type PasswordResetToken struct {
	DTO
	CustomerId uint      `json:"customerId"`
	Token      string    `gorm:"uniqueIndex;size:64" json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterCustomerInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CustomerLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
