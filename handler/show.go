package handler

import (
	"cinebook/constants"
	"cinebook/database"
	"cinebook/helper"
	"cinebook/model"
	"cinebook/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreateShow creates a show together with its full 64-seat grid in one
// transaction. A failed seat insert rolls the show back and is reported
// distinctly so an operator never finds a show with partial seating.
func CreateShow(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateShow").(model.CreateShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	show := model.Show{
		MovieId:   movie.ID,
		Screen:    input.Screen,
		StartTime: input.StartTime,
		Status:    model.ShowStatusScheduled,
	}
	if err := tx.Create(&show).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create show", err)
	}

	if err := helper.CreateShowSeats(tx, show.ID); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Seat generation failed, show was not created", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyChange(constants.TABLE_SHOWS, constants.EVENT_INSERT)
	helper.NotifyChange(constants.TABLE_SEATS, constants.EVENT_INSERT)

	show.Movie = movie
	return utils.SuccessResponse(c, fiber.StatusCreated, show)
}

func GetShows(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterShowInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Show{}).Preload("Movie").Order("start_time asc")
	if filterInput.MovieId > 0 {
		query = query.Where("movie_id = ?", filterInput.MovieId)
	}
	if filterInput.Status != "" {
		query = query.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var shows []model.Show
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Find(&shows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load shows", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       shows,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GetShowSeats returns the seat grid of a show grouped by row, the
// shape the seat map consumes directly.
func GetShowSeats(c *fiber.Ctx) error {
	db := database.DB

	showId := c.Locals("inputId").(int)
	var show model.Show
	if err := db.First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}

	var seats []model.Seat
	if err := db.Where("show_id = ?", show.ID).
		Order("row asc, \"column\" asc").
		Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load seats", err)
	}

	result := make(map[string][]model.Seat)
	for _, seat := range seats {
		result[seat.Row] = append(result[seat.Row], seat)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// DeleteShow removes a show and its seats. Orders referencing the show
// stay untouched: their seat labels and snack lines are denormalized.
func DeleteShow(c *fiber.Ctx) error {
	db := database.DB

	showId := c.Locals("inputId").(int)
	var show model.Show
	if err := db.First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("show_id = ?", show.ID).Delete(&model.Seat{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete seats", err)
	}
	if err := tx.Delete(&show).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete show", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyChange(constants.TABLE_SHOWS, constants.EVENT_DELETE)
	helper.NotifyChange(constants.TABLE_SEATS, constants.EVENT_DELETE)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": show.ID})
}
