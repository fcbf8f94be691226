package shared_test

import (
	"context"
	"errors"
	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: &yes},
		{input: "0", want: &no},
		{input: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{name: "empty", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 50, limit: 0, want: 1},
		{name: "exact", total: 100, limit: 10, want: 10},
		{name: "remainder", total: 101, limit: 10, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Guests   *int    `db:"guests_count"`
		Notes    *string `db:"special_requests"`
		Payment  *string `db:"payment_method"`
		Internal string  `db:"-"`
		Untagged string
	}

	two, empty := 2, ""

	got := shared.TransformFields(patch{Guests: &two, Notes: &empty, Internal: "x", Untagged: "y"}, "user-1")

	assert.Equal(t, 2, got["guests_count"])
	assert.Equal(t, "", got["special_requests"])
	assert.NotContains(t, got, "payment_method")
	assert.NotContains(t, got, "-")
	assert.Equal(t, "user-1", got[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])
	assert.Len(t, got, 4)
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("b-1", "id", "bookings")

	where, args := got.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.System, shared.Actor(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-9")
	assert.Equal(t, "user-9", shared.Actor(ctx))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "bookings:get:b-1", shared.BuildCacheKey("bookings:get", "b-1"))
	assert.Equal(t, "dashboard", shared.BuildCacheKey("dashboard"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "check_in", SortDir: "DESC"}

	confirmed := dto.NewFilterGroup()
	confirmed.EqIfSet("bookings", "status", "confirmed")

	cancelled := dto.NewFilterGroup()
	cancelled.EqIfSet("bookings", "status", "cancelled")

	a := shared.BuildCacheKeyWithQuery("bookings:gets", params, confirmed)
	b := shared.BuildCacheKeyWithQuery("bookings:gets", params, cancelled)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, shared.BuildCacheKeyWithQuery("bookings:gets", params, confirmed))
	assert.Contains(t, a, "bookings:gets:1:10:check_in:DESC:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "bookings:*").Return(errors.New("redis down"))
	mockCache.EXPECT().Clear(gomock.Any(), "rooms:*").Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "bookings", "rooms")
}

func TestDetachAndDrain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var done atomic.Int32

	for range 3 {
		shared.Detach(ctx, func(ctx context.Context) {
			time.Sleep(20 * time.Millisecond)
			assert.NoError(t, ctx.Err())
			done.Add(1)
		})
	}

	cancel()
	shared.Drain()

	assert.Equal(t, int32(3), done.Load())
}
