package repository

import (
	"errors"
	"fmt"
	"hotel/infras/otel/mocks"
	"hotel/shared/dto"
	"hotel/shared/model"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type reservation struct {
	ID         string `db:"id"`
	RoomID     string `db:"room_id"`
	RoomNumber string `db:"room_number" table:"rooms" column:"number"`
	model.Metadata
}

func (reservation) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = reservations.room_id"
}

func newTestRepo() Repository[reservation] {
	return NewRepository[reservation]("reservation", "reservations", "id", nil, mocks.NewOtel())
}

func TestNewRepositoryReadsTags(t *testing.T) {
	repo := newTestRepo()

	assert.Equal(t, []string{"id", "room_id", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
	assert.Equal(t, "LEFT JOIN rooms ON rooms.id = reservations.room_id", repo.join)
}

func TestSelectClause(t *testing.T) {
	repo := newTestRepo()

	assert.Equal(t,
		"reservations.id, reservations.room_id, rooms.number AS room_number, reservations.created_at, reservations.modified_at, reservations.created_by, reservations.modified_by",
		repo.selectClause())
	assert.Equal(t, "reservations.id, rooms.number AS room_number", repo.selectClause("id", "room_number"))
}

func TestOrderClause(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "no sort", params: dto.QueryParams{}, want: ""},
		{name: "own column", params: dto.QueryParams{SortBy: "created_at", SortDir: "DESC"}, want: "ORDER BY reservations.created_at DESC"},
		{name: "joined alias", params: dto.QueryParams{SortBy: "room_number"}, want: "ORDER BY rooms.number ASC"},
		{name: "unknown column ignored", params: dto.QueryParams{SortBy: "id; DROP TABLE rooms"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.OrderClause(tt.params))
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := newTestRepo()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "reservations"},
		},
	})
	assert.Equal(t, " WHERE (reservations.room_id = :room_id) ", where)
	assert.Equal(t, map[string]any{"room_id": "r-1"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
