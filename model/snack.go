package model

const (
	SnackCategorySnack = "SNACK"
	SnackCategoryDrink = "DRINK"
	SnackCategoryCombo = "COMBO"
)

type Snack struct {
	DTO
	Name     string  `gorm:"size:100;not null" validate:"required" json:"name"`
	Price    float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
	Category string  `gorm:"size:10;not null" validate:"required,oneof=SNACK DRINK COMBO" json:"category"`
	ImageUrl string  `json:"imageUrl"`
}

type CreateSnackInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required,oneof=SNACK DRINK COMBO"`
	ImageUrl string  `json:"imageUrl" validate:"omitempty,url"`
}

type FilterSnackInput struct {
	Pagination
	Category string `query:"category" validate:"omitempty,oneof=SNACK DRINK COMBO"`
}
