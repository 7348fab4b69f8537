package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	placeInterval "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
	"github.com/carhive/FleetTimeline-Service/pkg/simpletxmanager"
	"github.com/carhive/FleetTimeline-Service/pkg/txmanager"
)

type fakeUseCase struct {
	resp *placeInterval.Response
	err  error

	gotReq *placeInterval.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *placeInterval.Request) (*placeInterval.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"vehicleId": 7,
	"customerName": "Ivan Petrov",
	"pickupDate": "2026-09-01",
	"returnDate": "2026-09-08",
	"totalCost": 350
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	customer := "Ivan Petrov"
	uc := &fakeUseCase{resp: &placeInterval.Response{
		ID:           42,
		VehicleID:    7,
		Kind:         domain.KindBooking,
		StartDate:    time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
		CustomerName: &customer,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-01", resp.PickupDate)
	assert.Equal(t, "2026-09-08", resp.ReturnDate)
	assert.Equal(t, "Ivan Petrov", resp.CustomerName)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.KindBooking, uc.gotReq.Kind, "бронирование всегда размещается как booking-интервал")
}

func TestHandle_Conflict(t *testing.T) {
	existing := &domain.Interval{
		ID:        5,
		VehicleID: 7,
		Kind:      domain.KindMaintenance,
		StartDate: time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
	}
	h := NewHandler(&fakeUseCase{err: &placeInterval.ConflictError{Existing: existing}}, nopLogger{})

	rec := doRequest(h, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error    string `json:"error"`
		Conflict struct {
			Kind      string `json:"kind"`
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "maintenance", resp.Conflict.Kind, "в 409 попадают даты и тип мешающего интервала")
	assert.Equal(t, "2026-09-03", resp.Conflict.StartDate)
	assert.Equal(t, "2026-09-10", resp.Conflict.EndDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantCode   int
	}{
		{"битый JSON", `{not json`, nil, http.StatusBadRequest},
		{"некорректная дата", `{"vehicleId": 7, "pickupDate": "01.09.2026", "returnDate": "2026-09-08"}`, nil, http.StatusBadRequest},
		{"автомобиль не найден", validBody, placeInterval.ErrVehicleNotFound, http.StatusNotFound},
		{"некорректный диапазон", validBody, placeInterval.ErrInvalidDateRange, http.StatusBadRequest},
		{"serialization failure", validBody, txmanager.ErrSerialization, http.StatusServiceUnavailable},
		{"serialization failure без метрик", validBody, simpletxmanager.ErrSerialization, http.StatusServiceUnavailable},
		{"внутренняя ошибка", validBody, placeInterval.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.useCaseErr}, nopLogger{})

			rec := doRequest(h, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
