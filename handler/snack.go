package handler

import (
	"cinebook/constants"
	"cinebook/database"
	"cinebook/helper"
	"cinebook/model"
	"cinebook/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateSnack(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateSnack").(model.CreateSnackInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var newSnack model.Snack
	copier.Copy(&newSnack, &input)

	if err := db.Create(&newSnack).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create snack", err)
	}

	helper.NotifyChange(constants.TABLE_SNACKS, constants.EVENT_INSERT)

	return utils.SuccessResponse(c, fiber.StatusCreated, newSnack)
}

func GetSnacks(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterSnackInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Snack{}).Order("category asc, price asc")
	if filterInput.Category != "" {
		query = query.Where("category = ?", filterInput.Category)
	}

	var totalCount int64
	query.Count(&totalCount)

	var snacks []model.Snack
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Find(&snacks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load snacks", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       snacks,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func DeleteSnacks(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := db.Where("id IN ?", input.IDs).Delete(&model.Snack{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete snacks", err)
	}

	helper.NotifyChange(constants.TABLE_SNACKS, constants.EVENT_DELETE)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
