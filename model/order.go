package model

import "time"

// Pickup workflow statuses. An order only ever moves forward along this
// chain; it is created CONFIRMED and ends COLLECTED.
const (
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCollected = "COLLECTED"
)

var statusRank = map[string]int{
	OrderStatusConfirmed: 0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusCollected: 3,
}

func IsKnownStatus(status string) bool {
	_, ok := statusRank[status]
	return ok
}

// CanTransition reports whether an order may move between the two
// statuses. Backward moves are rejected; re-applying the current status
// is allowed so callers can treat it as an idempotent no-op.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// Order is created once at booking time together with its seats and
// snack line items, then only mutated by status transitions. Show info
// is denormalized so the pickup view survives show deletion.
type Order struct {
	DTO
	PublicCode  string    `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXXXX
	CustomerId  uint      `json:"customerId"`
	Customer    Customer  `gorm:"foreignKey:CustomerId" json:"-"`
	ShowId      uint      `json:"showId"`
	TotalAmount float64   `gorm:"not null" json:"totalAmount"`
	Status      string    `gorm:"size:20;not null;default:'CONFIRMED'" json:"status"`
	PaymentRef  string    `gorm:"size:64" json:"paymentRef"`
	MovieTitle  string    `gorm:"size:255" json:"movieTitle"`
	Screen      string    `gorm:"size:20" json:"screen"`
	ShowTime    time.Time `json:"showTime"`

	Seats []OrderSeat `gorm:"foreignKey:OrderId" json:"seats"`
	Items []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderSeat reserves one seat for one order. The unique index on SeatId
// is the data-layer defense against double booking; the label is stored
// so order history keeps rendering after the show's seats are deleted.
type OrderSeat struct {
	DTO
	OrderId   uint   `gorm:"not null;index" json:"orderId"`
	SeatId    uint   `gorm:"not null;uniqueIndex" json:"seatId"`
	SeatLabel string `gorm:"size:4" json:"seatLabel"`
}

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"not null;index" json:"orderId"`
	SnackId   uint    `json:"snackId"`
	SnackName string  `gorm:"size:100" json:"snackName"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

type OrderItemInput struct {
	SnackId  uint `json:"snackId" validate:"required,gt=0"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	ShowId      uint             `json:"showId" validate:"required,gt=0"`
	SeatIds     []uint           `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	Items       []OrderItemInput `json:"items" validate:"omitempty,dive"`
	TotalAmount float64          `json:"totalAmount" validate:"required,gt=0"`
	PaymentRef  string           `json:"paymentRef" validate:"required"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED PREPARING READY COLLECTED"`
}

type FilterOrderInput struct {
	Pagination
	ShowId uint   `query:"showId" validate:"omitempty,gt=0"`
	Status string `query:"status" validate:"omitempty,oneof=CONFIRMED PREPARING READY COLLECTED"`
}
