package model

import (
	"hotel/shared/model"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldConsumablesCost = "consumables_cost"
	FieldModifiedAt      = "modified_at"
	FieldModifiedBy      = "modified_by"
)

// Booking joins the guest and room it references. Both sides are optional:
// deleting a guest or a room keeps its bookings as history.
type Booking struct {
	ID              string              `db:"id"`
	GuestID         string              `db:"guest_id"`
	RoomID          string              `db:"room_id"`
	CheckIn         time.Time           `db:"check_in"`
	CheckOut        time.Time           `db:"check_out"`
	Status          Status              `db:"status"`
	TotalAmount     decimal.Decimal     `db:"total_amount"`
	GuestsCount     int                 `db:"guests_count"`
	SpecialRequests *string             `db:"special_requests"`
	PaymentMethod   *string             `db:"payment_method"`
	ConsumablesCost decimal.Decimal     `db:"consumables_cost"`
	GuestName       *string             `db:"guest_name"  table:"guests" column:"name"`
	GuestEmail      *string             `db:"guest_email" table:"guests" column:"email"`
	GuestPhone      *string             `db:"guest_phone" table:"guests" column:"phone"`
	RoomNumber      *string             `db:"room_number" table:"rooms"  column:"number"`
	RoomType        *string             `db:"room_type"   table:"rooms"  column:"type"`
	RoomPrice       decimal.NullDecimal `db:"room_price"  table:"rooms"  column:"price"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// Nights counts the nights between two calendar dates, rounding a partial
// day up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// StayAmount is the room price charged for the stay.
func StayAmount(price decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(Nights(checkIn, checkOut))))
}
