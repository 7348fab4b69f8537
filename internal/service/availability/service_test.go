package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	vehicleRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/vehicle"
)

// Фейки зависимостей

type fakeIntervalRepo struct {
	timelines map[int64][]*domain.Interval
	err       error
}

func (f *fakeIntervalRepo) ListByVehicle(_ context.Context, vehicleID int64) ([]*domain.Interval, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.timelines[vehicleID], nil
}

func (f *fakeIntervalRepo) ListByVehicles(_ context.Context, vehicleIDs []int64) (map[int64][]*domain.Interval, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[int64][]*domain.Interval)
	for _, id := range vehicleIDs {
		if timeline, ok := f.timelines[id]; ok {
			result[id] = timeline
		}
	}
	return result, nil
}

type fakeVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, ok := f.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return vehicle, nil
}

func (f *fakeVehicleRepo) List(_ context.Context) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0, len(f.vehicles))
	for id := int64(1); id <= int64(len(f.vehicles)); id++ {
		if vehicle, ok := f.vehicles[id]; ok {
			vehicles = append(vehicles, vehicle)
		}
	}
	return vehicles, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// today-относительные даты: сервис считает статусы на domain.Today()
func daysFromToday(d int) time.Time {
	return domain.Today().AddDate(0, 0, d)
}

func interval(id, vehicleID int64, kind domain.IntervalKind, startOffset, endOffset int) *domain.Interval {
	return &domain.Interval{
		ID:        id,
		VehicleID: vehicleID,
		Kind:      kind,
		StartDate: daysFromToday(startOffset),
		EndDate:   daysFromToday(endOffset),
	}
}

func testVehicle(id int64) *domain.Vehicle {
	return &domain.Vehicle{
		ID:           id,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: "B-MW 1234",
	}
}

func newService(timelines map[int64][]*domain.Interval, vehicles ...*domain.Vehicle) *Service {
	vrepo := &fakeVehicleRepo{vehicles: make(map[int64]*domain.Vehicle)}
	for _, v := range vehicles {
		vrepo.vehicles[v.ID] = v
	}
	return NewService(&fakeIntervalRepo{timelines: timelines}, vrepo, nopLogger{})
}

func TestCheckAvailability(t *testing.T) {
	t.Run("свободный период", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, 0, 5)},
		}, testVehicle(1))

		resp, err := svc.CheckAvailability(context.Background(), 1, daysFromToday(5), daysFromToday(10))

		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Nil(t, resp.ConflictKind)
	})

	t.Run("конфликт несёт тип и даты мешающего интервала", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindMaintenance, 2, 7)},
		}, testVehicle(1))

		resp, err := svc.CheckAvailability(context.Background(), 1, daysFromToday(5), daysFromToday(10))

		require.NoError(t, err)
		assert.False(t, resp.Available)
		require.NotNil(t, resp.ConflictKind)
		assert.Equal(t, "maintenance", *resp.ConflictKind)
		require.NotNil(t, resp.ConflictStartDate)
		assert.Equal(t, daysFromToday(2).Format(domain.DateFormat), *resp.ConflictStartDate)
	})

	t.Run("nextAvailableDate перешагивает цепочку встык", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {
				interval(10, 1, domain.KindBooking, 0, 5),
				interval(11, 1, domain.KindManualBlock, 5, 9),
			},
		}, testVehicle(1))

		resp, err := svc.CheckAvailability(context.Background(), 1, daysFromToday(0), daysFromToday(3))

		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, daysFromToday(9).Format(domain.DateFormat), resp.NextAvailableDate)
	})

	t.Run("автомобиль не найден", func(t *testing.T) {
		svc := newService(nil)

		_, err := svc.CheckAvailability(context.Background(), 99, daysFromToday(0), daysFromToday(3))

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("start не раньше end", func(t *testing.T) {
		svc := newService(nil, testVehicle(1))

		_, err := svc.CheckAvailability(context.Background(), 1, daysFromToday(3), daysFromToday(3))

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestCurrentStatus(t *testing.T) {
	t.Run("свободен сегодня", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, 3, 8)},
		}, testVehicle(1))

		resp, err := svc.CurrentStatus(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusAvailable), resp.Status)
		assert.Nil(t, resp.CurrentIntervalID)
		assert.Nil(t, resp.BusyUntil)
	})

	t.Run("занят бронированием", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, -2, 4)},
		}, testVehicle(1))

		resp, err := svc.CurrentStatus(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusRented), resp.Status)
		require.NotNil(t, resp.CurrentIntervalID)
		assert.Equal(t, int64(10), *resp.CurrentIntervalID)
		require.NotNil(t, resp.BusyUntil)
		assert.Equal(t, daysFromToday(4).Format(domain.DateFormat), *resp.BusyUntil)
		assert.Equal(t, daysFromToday(4).Format(domain.DateFormat), resp.NextAvailableDate)
	})

	t.Run("автомобиль не найден", func(t *testing.T) {
		svc := newService(nil)

		_, err := svc.CurrentStatus(context.Background(), 42)

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestFleetOverview(t *testing.T) {
	customer := "Ivan Petrov"
	booked := interval(10, 1, domain.KindBooking, -1, 3)
	booked.CustomerName = &customer

	svc := newService(map[int64][]*domain.Interval{
		1: {booked},
		2: {interval(11, 2, domain.KindMaintenance, 0, 2)},
	}, testVehicle(1), testVehicle(2), testVehicle(3))

	resp, err := svc.FleetOverview(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 3)

	assert.Equal(t, string(domain.StatusRented), resp.Vehicles[0].Status)
	require.NotNil(t, resp.Vehicles[0].CustomerName, "имя клиента показывается только для бронирований")
	assert.Equal(t, customer, *resp.Vehicles[0].CustomerName)

	assert.Equal(t, string(domain.StatusMaintenance), resp.Vehicles[1].Status)
	assert.Nil(t, resp.Vehicles[1].CustomerName)

	assert.Equal(t, string(domain.StatusAvailable), resp.Vehicles[2].Status)
	assert.Nil(t, resp.Vehicles[2].BusyUntil)
}

func TestFleetAvailability(t *testing.T) {
	t.Run("совпадает с поштучной проверкой", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, 2, 7)},
			2: {interval(11, 2, domain.KindMaintenance, 20, 25)},
			3: {interval(12, 3, domain.KindManualBlock, 0, 4)},
		}, testVehicle(1), testVehicle(2), testVehicle(3))

		start, end := daysFromToday(5), daysFromToday(10)
		resp, err := svc.FleetAvailability(context.Background(), []int64{1, 2, 3}, start, end)

		require.NoError(t, err)
		require.Len(t, resp.Availability, 3)

		for _, id := range []int64{1, 2, 3} {
			single, err := svc.CheckAvailability(context.Background(), id, start, end)
			require.NoError(t, err)
			assert.Equal(t, single.Available, resp.Availability[id],
				"батч-ответ для автомобиля %d расходится с поштучной проверкой", id)
		}
	})

	t.Run("занятость одного автомобиля не влияет на другие", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, 5, 10)},
		}, testVehicle(1), testVehicle(2))

		resp, err := svc.FleetAvailability(context.Background(), []int64{1, 2}, daysFromToday(5), daysFromToday(10))

		require.NoError(t, err)
		assert.False(t, resp.Availability[1])
		assert.True(t, resp.Availability[2], "таймлайны автомобилей независимы")
	})

	t.Run("пустой список означает весь парк", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			2: {interval(10, 2, domain.KindManualBlock, 0, 30)},
		}, testVehicle(1), testVehicle(2), testVehicle(3))

		resp, err := svc.FleetAvailability(context.Background(), nil, daysFromToday(1), daysFromToday(4))

		require.NoError(t, err)
		require.Len(t, resp.Availability, 3)
		assert.True(t, resp.Availability[1])
		assert.False(t, resp.Availability[2])
		assert.True(t, resp.Availability[3])
	})

	t.Run("встык к существующему интервалу доступен", func(t *testing.T) {
		svc := newService(map[int64][]*domain.Interval{
			1: {interval(10, 1, domain.KindBooking, 0, 5)},
		}, testVehicle(1))

		resp, err := svc.FleetAvailability(context.Background(), []int64{1}, daysFromToday(5), daysFromToday(8))

		require.NoError(t, err)
		assert.True(t, resp.Availability[1], "end_date эксклюзивна, периоды встык не конфликтуют")
	})

	t.Run("start не раньше end", func(t *testing.T) {
		svc := newService(nil, testVehicle(1))

		_, err := svc.FleetAvailability(context.Background(), []int64{1}, daysFromToday(3), daysFromToday(3))

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestStats(t *testing.T) {
	svc := newService(map[int64][]*domain.Interval{
		1: {interval(10, 1, domain.KindBooking, -1, 3)},     // rented, active booking
		2: {interval(11, 2, domain.KindBooking, 5, 9)},      // available, upcoming booking
		3: {interval(12, 3, domain.KindMaintenance, 0, 2)},  // in maintenance
		4: {interval(13, 4, domain.KindManualBlock, -2, 6)}, // blocked
	}, testVehicle(1), testVehicle(2), testVehicle(3), testVehicle(4), testVehicle(5))

	resp, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalVehicles)
	assert.Equal(t, 2, resp.Available, "автомобиль с будущим бронированием сегодня свободен")
	assert.Equal(t, 1, resp.Rented)
	assert.Equal(t, 1, resp.InMaintenance)
	assert.Equal(t, 1, resp.Blocked)
	assert.Equal(t, 1, resp.ActiveBookings)
	assert.Equal(t, 1, resp.UpcomingBookings)
	assert.Equal(t, 1, resp.ActiveBlockedPeriods)
}

func TestStats_RepositoryError(t *testing.T) {
	vrepo := &fakeVehicleRepo{vehicles: map[int64]*domain.Vehicle{1: testVehicle(1)}}
	svc := NewService(&fakeIntervalRepo{err: errors.New("connection refused")}, vrepo, nopLogger{})

	_, err := svc.Stats(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
