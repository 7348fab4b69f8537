package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	vehicleRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/vehicle"
	"github.com/carhive/FleetTimeline-Service/internal/service/fleet/models"
	"github.com/carhive/FleetTimeline-Service/pkg/ptr"
)

// Фейки зависимостей

type fakeVehicleRepo struct {
	vehicles  map[int64]*domain.Vehicle
	nextID    int64
	createErr error
	updateErr error
}

func newFakeVehicleRepo(vehicles ...*domain.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[int64]*domain.Vehicle), nextID: 100}
	for _, v := range vehicles {
		repo.vehicles[v.ID] = v
	}
	return repo
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *v
	created.ID = f.nextID
	f.nextID++
	f.vehicles[created.ID] = &created
	return &created, nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func (f *fakeVehicleRepo) List(_ context.Context) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0, len(f.vehicles))
	for id := int64(1); id < f.nextID; id++ {
		if v, ok := f.vehicles[id]; ok {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.vehicles[v.ID]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.vehicles[id]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	delete(f.vehicles, id)
	return nil
}

type fakeIntervalRepo struct {
	timelines map[int64][]*domain.Interval
}

func (f *fakeIntervalRepo) ListByVehicle(_ context.Context, vehicleID int64) ([]*domain.Interval, error) {
	return f.timelines[vehicleID], nil
}

func (f *fakeIntervalRepo) ListByVehicles(_ context.Context, vehicleIDs []int64) (map[int64][]*domain.Interval, error) {
	result := make(map[int64][]*domain.Interval)
	for _, id := range vehicleIDs {
		if timeline, ok := f.timelines[id]; ok {
			result[id] = timeline
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(vrepo *fakeVehicleRepo, timelines map[int64][]*domain.Interval) *Service {
	return NewService(vrepo, &fakeIntervalRepo{timelines: timelines}, nopLogger{})
}

func createRequest() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: "B-MW 1234",
	}
}

func TestCreate(t *testing.T) {
	t.Run("новый автомобиль доступен", func(t *testing.T) {
		svc := newService(newFakeVehicleRepo(), nil)

		resp, err := svc.Create(context.Background(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "Toyota", resp.Make)
		assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	})

	t.Run("пробелы в полях обрезаются", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		svc := newService(repo, nil)

		req := createRequest()
		req.Make = "  Toyota  "
		req.LicensePlate = " B-MW 1234 "

		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Toyota", resp.Make)
		assert.Equal(t, "B-MW 1234", resp.LicensePlate)
	})

	t.Run("дубликат номера", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		repo.createErr = vehicleRepo.ErrDuplicatePlate
		svc := newService(repo, nil)

		_, err := svc.Create(context.Background(), createRequest())

		assert.ErrorIs(t, err, ErrDuplicatePlate)
	})

	t.Run("валидация", func(t *testing.T) {
		svc := newService(newFakeVehicleRepo(), nil)

		tests := []struct {
			name   string
			mutate func(*models.CreateVehicleRequest)
		}{
			{"пустая марка", func(r *models.CreateVehicleRequest) { r.Make = "  " }},
			{"пустой номер", func(r *models.CreateVehicleRequest) { r.LicensePlate = "" }},
			{"год вне диапазона", func(r *models.CreateVehicleRequest) { r.Year = 1900 }},
			{"отрицательный тариф", func(r *models.CreateVehicleRequest) { r.WeeklyRate = ptr.Ptr(-10.0) }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := createRequest()
				tt.mutate(req)
				_, err := svc.Create(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestGetByID(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, Make: "Skoda", Model: "Octavia", Year: 2021, LicensePlate: "M-XY 7788"}

	t.Run("статус выводится из таймлайна", func(t *testing.T) {
		timelines := map[int64][]*domain.Interval{
			1: {{
				ID:        10,
				VehicleID: 1,
				Kind:      domain.KindMaintenance,
				StartDate: domain.Today().AddDate(0, 0, -1),
				EndDate:   domain.Today().AddDate(0, 0, 2),
			}},
		}
		svc := newService(newFakeVehicleRepo(vehicle), timelines)

		resp, err := svc.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusMaintenance), resp.Status)
	})

	t.Run("пустой таймлайн - available", func(t *testing.T) {
		svc := newService(newFakeVehicleRepo(vehicle), nil)

		resp, err := svc.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	})

	t.Run("автомобиль не найден", func(t *testing.T) {
		svc := newService(newFakeVehicleRepo(), nil)

		_, err := svc.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("частичное обновление сохраняет остальные поля", func(t *testing.T) {
		repo := newFakeVehicleRepo(&domain.Vehicle{
			ID: 1, Make: "Skoda", Model: "Octavia", Year: 2021, LicensePlate: "M-XY 7788",
		})
		svc := newService(repo, nil)

		resp, err := svc.Update(context.Background(), 1, &models.UpdateVehicleRequest{Model: ptr.Ptr("Superb")})

		require.NoError(t, err)
		assert.Equal(t, "Superb", resp.Model)
		assert.Equal(t, "Skoda", resp.Make, "незаданные поля не меняются")
		assert.Equal(t, "M-XY 7788", resp.LicensePlate)
	})

	t.Run("обновление валидируется", func(t *testing.T) {
		repo := newFakeVehicleRepo(&domain.Vehicle{
			ID: 1, Make: "Skoda", Model: "Octavia", Year: 2021, LicensePlate: "M-XY 7788",
		})
		svc := newService(repo, nil)

		_, err := svc.Update(context.Background(), 1, &models.UpdateVehicleRequest{Year: ptr.Ptr(2150)})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("автомобиль не найден", func(t *testing.T) {
		svc := newService(newFakeVehicleRepo(), nil)

		_, err := svc.Update(context.Background(), 99, &models.UpdateVehicleRequest{})

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeVehicleRepo(&domain.Vehicle{ID: 1, Make: "Skoda", Model: "Octavia", Year: 2021, LicensePlate: "M-XY 7788"})
	svc := newService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrVehicleNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeVehicleRepo(
		&domain.Vehicle{ID: 1, Make: "Skoda", Model: "Octavia", Year: 2021, LicensePlate: "M-XY 7788"},
		&domain.Vehicle{ID: 2, Make: "Toyota", Model: "Corolla", Year: 2022, LicensePlate: "B-MW 1234"},
	)
	repo.nextID = 3
	timelines := map[int64][]*domain.Interval{
		2: {{
			ID:        10,
			VehicleID: 2,
			Kind:      domain.KindBooking,
			StartDate: domain.Today().AddDate(0, 0, -2),
			EndDate:   domain.Today().AddDate(0, 0, 3),
		}},
	}
	svc := newService(repo, timelines)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 2)
	assert.Equal(t, string(domain.StatusAvailable), resp.Vehicles[0].Status)
	assert.Equal(t, string(domain.StatusRented), resp.Vehicles[1].Status)
}
