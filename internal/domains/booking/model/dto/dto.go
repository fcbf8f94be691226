package dto

import (
	"cmp"
	"errors"
	"fmt"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStay         = errors.New("check-out must be after check-in")
	ErrNonPositiveQuantity = errors.New("consumable quantity must be greater than zero")
)

type CreateBookingRequest struct {
	GuestID         string  `json:"guestId"         validate:"required,uuid"`
	RoomID          string  `json:"roomId"          validate:"required,uuid"`
	CheckIn         string  `json:"checkIn"         validate:"required,datetime=2006-01-02"`
	CheckOut        string  `json:"checkOut"        validate:"required,datetime=2006-01-02"`
	GuestsCount     int     `json:"guestsCount"     validate:"required,min=1"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=1000"`
	PaymentMethod   *string `json:"paymentMethod"   validate:"omitempty,max=50"`
}

// Stay parses the requested dates as calendar days and checks their order.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	return ParseStay(c.CheckIn, c.CheckOut)
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, roomPrice decimal.Decimal) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Status:          model.StatusConfirmed,
		TotalAmount:     model.StayAmount(roomPrice, checkIn, checkOut),
		GuestsCount:     c.GuestsCount,
		SpecialRequests: c.SpecialRequests,
		PaymentMethod:   c.PaymentMethod,
		ConsumablesCost: decimal.Zero,
		Metadata:        gModel.NewMetadata(timezone.Now(), user),
	}
}

// UpdateBookingRequest edits the non-status fields of an open booking.
// Status changes go through TransitionRequest.
type UpdateBookingRequest struct {
	CheckIn         *string `db:"check_in"         json:"checkIn"         validate:"omitempty,datetime=2006-01-02"`
	CheckOut        *string `db:"check_out"        json:"checkOut"        validate:"omitempty,datetime=2006-01-02"`
	GuestsCount     *int    `db:"guests_count"     json:"guestsCount"     validate:"omitempty,min=1"`
	SpecialRequests *string `db:"special_requests" json:"specialRequests" validate:"omitempty,max=1000"`
	PaymentMethod   *string `db:"payment_method"   json:"paymentMethod"   validate:"omitempty,max=50"`
}

func (u UpdateBookingRequest) IsEmpty() bool {
	return u == UpdateBookingRequest{}
}

func (u UpdateBookingRequest) ChangesStay() bool {
	return u.CheckIn != nil || u.CheckOut != nil
}

// Stay applies the requested dates over the current ones.
func (u UpdateBookingRequest) Stay(current model.Booking) (checkIn, checkOut time.Time, err error) {
	in := current.CheckIn.Format(constant.DateOnlyFormat)
	if u.CheckIn != nil {
		in = *u.CheckIn
	}

	out := current.CheckOut.Format(constant.DateOnlyFormat)
	if u.CheckOut != nil {
		out = *u.CheckOut
	}

	return ParseStay(in, out)
}

// ParseStay reads two YYYY-MM-DD dates. They are calendar days, so they are
// parsed in UTC and never shifted by the application timezone.
func ParseStay(in, out string) (checkIn, checkOut time.Time, err error) {
	if checkIn, err = time.Parse(constant.DateOnlyFormat, in); err != nil {
		return checkIn, checkOut, fmt.Errorf("invalid check-in date: %w", err)
	}

	if checkOut, err = time.Parse(constant.DateOnlyFormat, out); err != nil {
		return checkIn, checkOut, fmt.Errorf("invalid check-out date: %w", err)
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, ErrInvalidStay
	}

	return checkIn, checkOut, nil
}

type ConsumableLine struct {
	ConsumableID string `json:"consumableId" validate:"required,uuid"`
	Quantity     int    `json:"quantity"`
}

type TransitionRequest struct {
	Status      model.Status     `json:"status"      validate:"required,enum"`
	Consumables []ConsumableLine `json:"consumables" validate:"omitempty,dive"`
}

// Lines rejects non-positive quantities, then merges repeated consumables and
// orders them by id so row locks are always taken in the same order.
func (t TransitionRequest) Lines() ([]ConsumableLine, error) {
	merged := make(map[string]int, len(t.Consumables))

	for _, line := range t.Consumables {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrNonPositiveQuantity, line.ConsumableID)
		}

		merged[line.ConsumableID] += line.Quantity
	}

	lines := make([]ConsumableLine, 0, len(merged))
	for id, quantity := range merged {
		lines = append(lines, ConsumableLine{ConsumableID: id, Quantity: quantity})
	}

	slices.SortFunc(lines, func(a, b ConsumableLine) int {
		return cmp.Compare(a.ConsumableID, b.ConsumableID)
	})

	return lines, nil
}

type GuestSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RoomSummary struct {
	ID     string          `json:"id"`
	Number string          `json:"number"`
	Type   string          `json:"type"`
	Price  decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	GuestID         string          `json:"guestId"`
	RoomID          string          `json:"roomId"`
	CheckIn         string          `json:"checkIn"`
	CheckOut        string          `json:"checkOut"`
	Status          model.Status    `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	GuestsCount     int             `json:"guestsCount"`
	SpecialRequests *string         `json:"specialRequests,omitempty"`
	PaymentMethod   *string         `json:"paymentMethod,omitempty"`
	ConsumablesCost decimal.Decimal `json:"consumablesCost"`
	Guest           *GuestSummary   `json:"guest,omitempty"`
	Room            *RoomSummary    `json:"room,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.GuestID = m.GuestID
	r.RoomID = m.RoomID
	r.CheckIn = m.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = m.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = m.Status
	r.TotalAmount = m.TotalAmount
	r.GuestsCount = m.GuestsCount
	r.SpecialRequests = m.SpecialRequests
	r.PaymentMethod = m.PaymentMethod
	r.ConsumablesCost = m.ConsumablesCost
	r.Metadata.FromModel(m.Metadata)

	if m.GuestName != nil {
		r.Guest = &GuestSummary{
			ID:    m.GuestID,
			Name:  *m.GuestName,
			Email: deref(m.GuestEmail),
			Phone: deref(m.GuestPhone),
		}
	}

	if m.RoomNumber != nil {
		r.Room = &RoomSummary{
			ID:     m.RoomID,
			Number: *m.RoomNumber,
			Type:   deref(m.RoomType),
			Price:  m.RoomPrice.Decimal,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
