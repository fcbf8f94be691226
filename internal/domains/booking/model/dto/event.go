package dto

import (
	"hotel/internal/domains/booking/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventBookingCreated      = "booking.created"
	EventBookingTransitioned = "booking.transitioned"
	EventBookingDeleted      = "booking.deleted"
)

// LifecycleEvent is published, keyed by booking id, after every committed
// change to a booking.
type LifecycleEvent struct {
	BookingID       string           `json:"bookingId"`
	GuestID         string           `json:"guestId"`
	RoomID          string           `json:"roomId"`
	From            model.Status     `json:"from,omitempty"`
	To              model.Status     `json:"to"`
	RoomStatus      string           `json:"roomStatus,omitempty"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	ConsumablesCost decimal.Decimal  `json:"consumablesCost"`
	Consumables     []ConsumableLine `json:"consumables,omitempty"`
	Actor           string           `json:"actor"`
	OccurredAt      time.Time        `json:"occurredAt"`
}

// ConsumableIDs lists the consumables the event drew stock from.
func (e LifecycleEvent) ConsumableIDs() []string {
	ids := make([]string, len(e.Consumables))
	for i, line := range e.Consumables {
		ids[i] = line.ConsumableID
	}

	return ids
}
