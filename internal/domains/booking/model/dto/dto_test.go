package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
)

func TestParseStay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		out     string
		wantErr error
		nights  int
	}{
		{name: "three nights", in: "2024-03-10", out: "2024-03-13", nights: 3},
		{name: "across month end", in: "2024-02-28", out: "2024-03-01", nights: 2},
		{name: "same day", in: "2024-03-10", out: "2024-03-10", wantErr: dto.ErrInvalidStay},
		{name: "reversed", in: "2024-03-10", out: "2024-03-09", wantErr: dto.ErrInvalidStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := dto.ParseStay(tt.in, tt.out)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, time.UTC, in.Location())
			assert.Equal(t, tt.nights, model.Nights(in, out))
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := dto.ParseStay("10/03/2024", "2024-03-12")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, dto.ErrInvalidStay)
	})
}

func TestTransitionRequest_Lines(t *testing.T) {
	t.Run("merges and orders by id", func(t *testing.T) {
		req := dto.TransitionRequest{
			Status: model.StatusCompleted,
			Consumables: []dto.ConsumableLine{
				{ConsumableID: "c-b", Quantity: 1},
				{ConsumableID: "c-a", Quantity: 2},
				{ConsumableID: "c-b", Quantity: 4},
			},
		}

		lines, err := req.Lines()

		require.NoError(t, err)
		assert.Equal(t, []dto.ConsumableLine{
			{ConsumableID: "c-a", Quantity: 2},
			{ConsumableID: "c-b", Quantity: 5},
		}, lines)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			req := dto.TransitionRequest{Consumables: []dto.ConsumableLine{{ConsumableID: "c-a", Quantity: quantity}}}

			_, err := req.Lines()

			assert.ErrorIs(t, err, dto.ErrNonPositiveQuantity)
		}
	})

	t.Run("no consumables", func(t *testing.T) {
		lines, err := dto.TransitionRequest{Status: model.StatusCheckedIn}.Lines()

		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{GuestID: "g", RoomID: "r", CheckIn: "2024-03-10", CheckOut: "2024-03-12", GuestsCount: 2}

	in, out, err := req.Stay()
	require.NoError(t, err)

	booking := req.ToModel("user-1", in, out, decimal.RequireFromString("150.25"))

	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.True(t, decimal.RequireFromString("300.50").Equal(booking.TotalAmount))
	assert.True(t, booking.ConsumablesCost.IsZero())
	assert.Equal(t, "user-1", booking.CreatedBy)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	name := "Maria"
	number := "101"

	var res dto.BookingResponse
	res.FromModel(model.Booking{
		ID:         "b",
		CheckIn:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		GuestName:  &name,
		RoomNumber: &number,
	})

	assert.Equal(t, "2024-03-10", res.CheckIn)
	assert.Equal(t, "2024-03-12", res.CheckOut)
	require.NotNil(t, res.Guest)
	assert.Equal(t, "Maria", res.Guest.Name)
	assert.Empty(t, res.Guest.Email)
	require.NotNil(t, res.Room)
	assert.Equal(t, "101", res.Room.Number)
}
