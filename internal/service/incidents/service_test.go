package incidents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	incidentRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/incident"
	"github.com/carhive/FleetTimeline-Service/internal/service/incidents/models"
)

// Фейки зависимостей

type fakeIncidentRepo struct {
	incidents map[int64]*domain.Incident
	nextID    int64
}

func newFakeIncidentRepo(incidents ...*domain.Incident) *fakeIncidentRepo {
	repo := &fakeIncidentRepo{incidents: make(map[int64]*domain.Incident), nextID: 100}
	for _, inc := range incidents {
		repo.incidents[inc.ID] = inc
	}
	return repo
}

func (f *fakeIncidentRepo) Create(_ context.Context, inc *domain.Incident) (*domain.Incident, error) {
	created := *inc
	created.ID = f.nextID
	f.nextID++
	f.incidents[created.ID] = &created
	return &created, nil
}

func (f *fakeIncidentRepo) GetByID(_ context.Context, id int64) (*domain.Incident, error) {
	inc, ok := f.incidents[id]
	if !ok {
		return nil, incidentRepo.ErrIncidentNotFound
	}
	return inc, nil
}

func (f *fakeIncidentRepo) ListByVehicle(_ context.Context, vehicleID int64) ([]*domain.Incident, error) {
	var incidents []*domain.Incident
	for _, inc := range f.incidents {
		if inc.VehicleID == vehicleID {
			incidents = append(incidents, inc)
		}
	}
	return incidents, nil
}

func (f *fakeIncidentRepo) AddFollowUp(_ context.Context, id int64, notes string, status domain.IncidentStatus) error {
	inc, ok := f.incidents[id]
	if !ok {
		return incidentRepo.ErrIncidentNotFound
	}
	inc.FollowUpNotes = &notes
	inc.Status = status
	return nil
}

func (f *fakeIncidentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.incidents[id]; !ok {
		return incidentRepo.ErrIncidentNotFound
	}
	delete(f.incidents, id)
	return nil
}

type fakeVehicleRepo struct {
	existing map[int64]bool
}

func (f *fakeVehicleRepo) Exists(_ context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeIncidentRepo, vehicleIDs ...int64) *Service {
	vrepo := &fakeVehicleRepo{existing: make(map[int64]bool)}
	for _, id := range vehicleIDs {
		vrepo.existing[id] = true
	}
	return NewService(repo, vrepo, nopLogger{})
}

func reportRequest() *models.ReportIncidentRequest {
	return &models.ReportIncidentRequest{
		VehicleID:    7,
		Description:  "Царапина на заднем бампере",
		IncidentDate: time.Date(2026, time.August, 20, 10, 30, 0, 0, time.UTC),
	}
}

func TestReport(t *testing.T) {
	t.Run("инцидент регистрируется открытым", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(), 7)

		resp, err := svc.Report(context.Background(), reportRequest())

		require.NoError(t, err)
		assert.Equal(t, string(domain.IncidentOpen), resp.Status)
		assert.Equal(t, "Царапина на заднем бампере", resp.Description)
	})

	t.Run("пустое описание", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(), 7)

		req := reportRequest()
		req.Description = "   "
		_, err := svc.Report(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("автомобиль не найден", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo())

		_, err := svc.Report(context.Background(), reportRequest())

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestAddFollowUp(t *testing.T) {
	openIncident := func() *domain.Incident {
		return &domain.Incident{
			ID:           1,
			VehicleID:    7,
			Description:  "ДТП на парковке",
			IncidentDate: time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
			Status:       domain.IncidentOpen,
		}
	}

	t.Run("заметка без закрытия", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(openIncident()), 7)

		resp, err := svc.AddFollowUp(context.Background(), 1, &models.FollowUpRequest{
			Notes: "Ожидаем оценку страховой",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.IncidentOpen), resp.Status)
		require.NotNil(t, resp.FollowUpNotes)
		assert.Equal(t, "Ожидаем оценку страховой", *resp.FollowUpNotes)
	})

	t.Run("resolve закрывает инцидент", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(openIncident()), 7)

		resp, err := svc.AddFollowUp(context.Background(), 1, &models.FollowUpRequest{
			Notes:   "Ущерб возмещён",
			Resolve: true,
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.IncidentResolved), resp.Status)
	})

	t.Run("пустые заметки", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(openIncident()), 7)

		_, err := svc.AddFollowUp(context.Background(), 1, &models.FollowUpRequest{Notes: "  "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("инцидент не найден", func(t *testing.T) {
		svc := newService(newFakeIncidentRepo(), 7)

		_, err := svc.AddFollowUp(context.Background(), 99, &models.FollowUpRequest{Notes: "n/a"})

		assert.ErrorIs(t, err, ErrIncidentNotFound)
	})
}

func TestDelete(t *testing.T) {
	svc := newService(newFakeIncidentRepo(&domain.Incident{ID: 1, VehicleID: 7}), 7)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrIncidentNotFound)
}

func TestListByVehicle(t *testing.T) {
	repo := newFakeIncidentRepo(
		&domain.Incident{ID: 1, VehicleID: 7, Status: domain.IncidentOpen},
		&domain.Incident{ID: 2, VehicleID: 8, Status: domain.IncidentOpen},
	)
	svc := newService(repo, 7, 8)

	resp, err := svc.ListByVehicle(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, int64(1), resp.Incidents[0].ID)
}
