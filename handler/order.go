package handler

import (
	"cinebook/constants"
	"cinebook/database"
	"cinebook/helper"
	"cinebook/model"
	"cinebook/utils"
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// CreateOrder books seats and snack items for a show. Seat reservation
// and order creation commit in one transaction: the target seats are
// locked FOR UPDATE, re-checked against the booked flag, and flipped
// together with the order and its join rows. The unique index on
// order_seats.seat_id backstops the same invariant at the data layer.
func CreateOrder(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var show model.Show
	if err := tx.Preload("Movie").First(&show, input.ShowId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}
	if show.Status != model.ShowStatusScheduled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Show is no longer bookable", nil)
	}

	seatIds := helper.DedupeIds(input.SeatIds)

	var seats []model.Seat
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("show_id = ? AND id IN ?", show.ID, seatIds).
		Find(&seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load seats", err)
	}
	if len(seats) != len(seatIds) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Some seats do not belong to this show", nil)
	}
	for _, seat := range seats {
		if seat.Booked {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, "Seat "+seat.Label+" is already booked", nil)
		}
	}

	snackById := map[uint]model.Snack{}
	if len(input.Items) > 0 {
		snackIds := make([]uint, 0, len(input.Items))
		for _, item := range input.Items {
			snackIds = append(snackIds, item.SnackId)
		}
		var snacks []model.Snack
		if err := tx.Where("id IN ?", snackIds).Find(&snacks).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load snacks", err)
		}
		for _, snack := range snacks {
			snackById[snack.ID] = snack
		}
		for _, item := range input.Items {
			if _, found := snackById[item.SnackId]; !found {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Unknown snack in order", nil)
			}
		}
	}

	order := model.Order{
		PublicCode:  "ORD-" + strings.ToUpper(uuid.New().String()[:8]),
		CustomerId:  customer.ID,
		ShowId:      show.ID,
		TotalAmount: input.TotalAmount,
		Status:      model.OrderStatusConfirmed,
		PaymentRef:  input.PaymentRef,
		MovieTitle:  show.Movie.Title,
		Screen:      show.Screen,
		ShowTime:    show.StartTime,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create order", err)
	}

	orderSeats := make([]model.OrderSeat, 0, len(seats))
	for _, seat := range seats {
		orderSeats = append(orderSeats, model.OrderSeat{
			OrderId:   order.ID,
			SeatId:    seat.ID,
			SeatLabel: seat.Label,
		})
	}
	if err := tx.Create(&orderSeats).Error; err != nil {
		// Unique seat index violation: somebody else committed first.
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "One of the seats was just booked", err)
	}

	if err := tx.Model(&model.Seat{}).
		Where("id IN ?", seatIds).
		Update("booked", true).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot reserve seats", err)
	}

	if len(input.Items) > 0 {
		orderItems := make([]model.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			snack := snackById[item.SnackId]
			orderItems = append(orderItems, model.OrderItem{
				OrderId:   order.ID,
				SnackId:   snack.ID,
				SnackName: snack.Name,
				UnitPrice: snack.Price,
				Quantity:  item.Quantity,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create order items", err)
		}
		order.Items = orderItems
	}
	order.Seats = orderSeats

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyChange(constants.TABLE_ORDERS, constants.EVENT_INSERT)
	helper.NotifyChange(constants.TABLE_SEATS, constants.EVENT_UPDATE)

	snackLines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		snackLines = append(snackLines, item.SnackName)
	}
	utils.SendOrderConfirmationEmail(customer.Email, utils.OrderConfirmationData{
		OrderCode:  order.PublicCode,
		MovieTitle: order.MovieTitle,
		ShowTime:   order.ShowTime.Format("02/01/2006 15:04"),
		Screen:     order.Screen,
		Seats:      strings.Join(helper.SeatLabels(order), ", "),
		Snacks:     strings.Join(snackLines, ", "),
		Total:      order.TotalAmount,
		PaymentRef: order.PaymentRef,
	}, helper.PickupPayload(order))

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// UpdateOrderStatus moves an order along the pickup workflow. Backward
// moves are rejected; re-applying the current status is a no-op.
func UpdateOrderStatus(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("UpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	orderId := c.Locals("inputId").(int)
	var order model.Order
	if err := db.Preload("Seats").Preload("Items").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	if !model.IsKnownStatus(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown status", nil)
	}

	if order.Status == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, order)
	}

	if !model.CanTransition(order.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Invalid transition "+order.Status+" -> "+input.Status, nil)
	}

	if err := db.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update status", err)
	}
	order.Status = input.Status

	helper.NotifyChange(constants.TABLE_ORDERS, constants.EVENT_UPDATE)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrders lists orders for the admin dashboard, newest first,
// optionally filtered by show or status.
func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterOrderInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Order{}).
		Preload("Seats").
		Preload("Items").
		Preload("Customer").
		Order("created_at desc")
	if filterInput.ShowId > 0 {
		query = query.Where("show_id = ?", filterInput.ShowId)
	}
	if filterInput.Status != "" {
		query = query.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders []model.Order
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GetMyOrders returns the calling customer's orders split into active
// pickups and collected history by a single predicate over one fetch.
func GetMyOrders(c *fiber.Ctx) error {
	db := database.DB

	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var orders []model.Order
	if err := db.
		Preload("Seats").
		Preload("Items").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load orders", err)
	}

	active, history := helper.SplitOrders(orders)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"active":  orderSummaries(active),
		"history": orderSummaries(history),
	})
}

func orderSummaries(orders []model.Order) []fiber.Map {
	response := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		response = append(response, fiber.Map{
			"orderCode":   order.PublicCode,
			"movieTitle":  order.MovieTitle,
			"screen":      order.Screen,
			"showTime":    order.ShowTime.Format("02/01/2006 15:04"),
			"seats":       helper.SeatLabels(order),
			"items":       order.Items,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
			"createdAt":   order.CreatedAt,
		})
	}
	return response
}

// GetOrderDetail returns one of the customer's orders with the
// scannable pickup payload rendered as a QR PNG.
func GetOrderDetail(c *fiber.Ctx) error {
	db := database.DB

	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var order model.Order
	if err := db.
		Preload("Seats").
		Preload("Items").
		Where("public_code = ? AND customer_id = ?", c.Params("orderCode"), customer.ID).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(helper.PickupPayload(order), 400)
	if err != nil {
		log.Printf("generate QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":   order.PublicCode,
		"movieTitle":  order.MovieTitle,
		"screen":      order.Screen,
		"showTime":    order.ShowTime.Format("02/01/2006 15:04"),
		"seats":       helper.SeatLabels(order),
		"items":       order.Items,
		"totalAmount": order.TotalAmount,
		"paymentRef":  order.PaymentRef,
		"status":      order.Status,
		"qrCode":      qrBase64,
	})
}
