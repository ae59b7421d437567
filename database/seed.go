package database

import (
	"cinebook/constants"
	"cinebook/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashed := string(bytes)

	accounts := []model.Account{
		{Username: "admin", Password: hashed, IsActive: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	snacks := []model.Snack{
		{Name: "Salted Popcorn (L)", Price: 120, Category: model.SnackCategorySnack},
		{Name: "Nachos with Cheese", Price: 150, Category: model.SnackCategorySnack},
		{Name: "Cola (L)", Price: 80, Category: model.SnackCategoryDrink},
		{Name: "Popcorn + 2 Colas", Price: 250, Category: model.SnackCategoryCombo},
	}
	for _, snack := range snacks {
		if err := db.Where(model.Snack{Name: snack.Name}).FirstOrCreate(&snack).Error; err != nil {
			log.Println("failed to seed snack:", snack.Name, "error:", err)
		}
	}
}
