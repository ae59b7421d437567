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

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var newMovie model.Movie
	copier.Copy(&newMovie, &input)
	newMovie.Slug = helper.GenerateUniqueMovieSlug(db, input.Title)

	if err := db.Create(&newMovie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create movie", err)
	}

	helper.NotifyChange(constants.TABLE_MOVIES, constants.EVENT_INSERT)

	return utils.SuccessResponse(c, fiber.StatusCreated, newMovie)
}

func GetMovies(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterMovieInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Movie{}).Order("created_at desc")
	if filterInput.Genre != "" {
		query = query.Where("genre = ?", filterInput.Genre)
	}
	if filterInput.Status != "" {
		query = query.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var movies []model.Movie
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load movies", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetMovieById(c *fiber.Ctx) error {
	db := database.DB

	movieId := c.Locals("inputId").(int)
	var movie model.Movie
	if err := db.Preload("Shows").First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// DeleteMovies removes movies with their shows and show seats. Orders
// keep rendering from their denormalized titles and labels.
func DeleteMovies(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var showIds []uint
	if err := tx.Model(&model.Show{}).Where("movie_id IN ?", input.IDs).Pluck("id", &showIds).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot resolve shows", err)
	}

	if len(showIds) > 0 {
		if err := tx.Where("show_id IN ?", showIds).Delete(&model.Seat{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete seats", err)
		}
		if err := tx.Where("id IN ?", showIds).Delete(&model.Show{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete shows", err)
		}
	}

	if err := tx.Where("id IN ?", input.IDs).Delete(&model.Movie{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete movies", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyChange(constants.TABLE_MOVIES, constants.EVENT_DELETE)
	if len(showIds) > 0 {
		helper.NotifyChange(constants.TABLE_SHOWS, constants.EVENT_DELETE)
		helper.NotifyChange(constants.TABLE_SEATS, constants.EVENT_DELETE)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
