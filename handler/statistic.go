package handler

import (
	"cinebook/database"
	"cinebook/model"
	"cinebook/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats computes the dashboard projection on every fetch:
// outstanding revenue is the sum over all non-collected orders,
// optionally narrowed to one show. Nothing here is cached.
func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB

	showId := c.QueryInt("showId", 0)

	type Stats struct {
		Movies         int64   `json:"movies"`
		Shows          int64   `json:"shows"`
		Snacks         int64   `json:"snacks"`
		Customers      int64   `json:"customers"`
		Orders         int64   `json:"orders"`
		PendingRevenue float64 `json:"pendingRevenue"`
	}

	var stats Stats
	db.Model(&model.Movie{}).Count(&stats.Movies)
	db.Model(&model.Show{}).Count(&stats.Shows)
	db.Model(&model.Snack{}).Count(&stats.Snacks)
	db.Model(&model.Customer{}).Count(&stats.Customers)

	orderQuery := db.Model(&model.Order{})
	if showId > 0 {
		orderQuery = orderQuery.Where("show_id = ?", showId)
	}
	orderQuery.Count(&stats.Orders)

	revenueQuery := db.Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCollected)
	if showId > 0 {
		revenueQuery = revenueQuery.Where("show_id = ?", showId)
	}
	if err := revenueQuery.
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.PendingRevenue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot compute revenue", err)
	}

	type StatusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var byStatus []StatusCount
	statusQuery := db.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if showId > 0 {
		statusQuery = statusQuery.Where("show_id = ?", showId)
	}
	if err := statusQuery.Scan(&byStatus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot count orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats":          stats,
		"ordersByStatus": byStatus,
	})
}
