package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
)

var allStatuses = []model.Status{
	model.StatusConfirmed,
	model.StatusCheckedIn,
	model.StatusCheckedOut,
	model.StatusCompleted,
	model.StatusCancelled,
}

func TestCanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusConfirmed:  {model.StatusCheckedIn, model.StatusCancelled},
		model.StatusCheckedIn:  {model.StatusCheckedOut, model.StatusCancelled},
		model.StatusCheckedOut: {model.StatusCompleted},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false

			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesAcceptNothing(t *testing.T) {
	for _, from := range []model.Status{model.StatusCompleted, model.StatusCancelled} {
		assert.True(t, from.IsTerminal())

		for _, to := range allStatuses {
			assert.False(t, from.CanTransitionTo(to))
		}
	}

	assert.False(t, model.StatusCheckedOut.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus("checked-in")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, status)

	_, err = model.ParseStatus("checked_in")
	assert.Error(t, err)

	_, err = model.ParseStatus("")
	assert.Error(t, err)
}

func TestRoomStatusAfter(t *testing.T) {
	tests := []struct {
		from    model.Status
		to      model.Status
		want    roomModel.Status
		changes bool
	}{
		{from: model.StatusConfirmed, to: model.StatusCheckedIn, want: roomModel.StatusOccupied, changes: true},
		{from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: roomModel.StatusCleaning, changes: true},
		{from: model.StatusCheckedOut, to: model.StatusCompleted, want: roomModel.StatusCleaning, changes: true},
		{from: model.StatusCheckedIn, to: model.StatusCancelled, want: roomModel.StatusAvailable, changes: true},
		{from: model.StatusConfirmed, to: model.StatusCancelled, changes: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, ok := model.RoomStatusAfter(tt.from, tt.to)

			assert.Equal(t, tt.changes, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
