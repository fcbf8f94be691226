package consumable_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/consumable/model/dto"
	consumableMocks "hotel/internal/domains/consumable/service/mocks"
	"hotel/internal/handlers/consumable"
	"hotel/shared/failure"
)

const consumableID = "2f1e0d9c-8b7a-4c6d-8e5f-4a3b2c1d0e9f"

func newRouter(t *testing.T) (*consumableMocks.MockConsumable, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := consumableMocks.NewMockConsumable(ctrl)

	handler := consumable.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetConsumableByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(svc *consumableMocks.MockConsumable)
		wantCode  int
		wantBody  string
	}{
		{
			name: "found",
			id:   consumableID,
			setupMock: func(svc *consumableMocks.MockConsumable) {
				svc.EXPECT().Get(gomock.Any(), consumableID).Return(dto.ConsumableResponse{ID: consumableID, Name: "Soda"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"name":"Soda"`,
		},
		{
			name: "missing",
			id:   consumableID,
			setupMock: func(svc *consumableMocks.MockConsumable) {
				svc.EXPECT().Get(gomock.Any(), consumableID).Return(dto.ConsumableResponse{}, failure.NotFound("consumable not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "not a uuid",
			id:       "c-soda",
			wantCode: http.StatusNotFound,
			wantBody: "consumable not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(router, http.MethodGet, "/consumables/"+tt.id, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_ConsumableWritesRejectMalformedID(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPatch, "/consumables/42", `{"stock":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodDelete, "/consumables/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
