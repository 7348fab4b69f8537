package reschedule_interval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	storage "github.com/carhive/FleetTimeline-Service/internal/infra/storage/interval"
	"github.com/carhive/FleetTimeline-Service/pkg/ptr"
)

// fakeIntervalRepo хранит интервалы в памяти, имитируя хранилище
type fakeIntervalRepo struct {
	intervals map[int64]*domain.Interval
	nextID    int64
}

func newFakeRepo(intervals ...*domain.Interval) *fakeIntervalRepo {
	repo := &fakeIntervalRepo{
		intervals: make(map[int64]*domain.Interval),
		nextID:    100,
	}
	for _, ival := range intervals {
		repo.intervals[ival.ID] = ival
	}
	return repo
}

func (f *fakeIntervalRepo) GetByID(_ context.Context, id int64) (*domain.Interval, error) {
	ival, ok := f.intervals[id]
	if !ok {
		return nil, storage.ErrIntervalNotFound
	}
	return ival, nil
}

func (f *fakeIntervalRepo) ListByVehicle(_ context.Context, vehicleID int64) ([]*domain.Interval, error) {
	var timeline []*domain.Interval
	for _, ival := range f.intervals {
		if ival.VehicleID == vehicleID {
			timeline = append(timeline, ival)
		}
	}
	return timeline, nil
}

func (f *fakeIntervalRepo) Create(_ context.Context, ival *domain.Interval) (*domain.Interval, error) {
	created := *ival
	created.ID = f.nextID
	f.nextID++
	f.intervals[created.ID] = &created
	return &created, nil
}

func (f *fakeIntervalRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.intervals[id]; !ok {
		return storage.ErrIntervalNotFound
	}
	delete(f.intervals, id)
	return nil
}

// fakeTxManager имитирует откат: при ошибке fn состояние репозитория
// восстанавливается из снимка, как это сделала бы настоящая транзакция
type fakeTxManager struct {
	repo *fakeIntervalRepo
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[int64]*domain.Interval, len(f.repo.intervals))
	for id, ival := range f.repo.intervals {
		snapshot[id] = ival
	}

	if err := fn(ctx); err != nil {
		f.repo.intervals = snapshot
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func bookingInterval(id, vehicleID int64, startDay, endDay int) *domain.Interval {
	return &domain.Interval{
		ID:           id,
		VehicleID:    vehicleID,
		Kind:         domain.KindBooking,
		StartDate:    day(startDay),
		EndDate:      day(endDay),
		CustomerName: ptr.Ptr("Ivan Petrov"),
		TotalCost:    ptr.Ptr(350.0),
	}
}

func newUseCase(repo *fakeIntervalRepo) *UseCase {
	return NewUseCase(repo, &fakeTxManager{repo: repo}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := newFakeRepo(bookingInterval(1, 7, 1, 5))
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		IntervalID: 1,
		Kind:       domain.KindBooking,
		StartDate:  day(10),
		EndDate:    day(14),
	})

	require.NoError(t, err)
	assert.Equal(t, day(10), resp.StartDate)
	assert.Equal(t, day(14), resp.EndDate)
	assert.NotEqual(t, int64(1), resp.ID, "интервал вставляется заново, не обновляется на месте")

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, storage.ErrIntervalNotFound, "старый интервал удалён")
}

func TestExecute_MetadataCarriedOver(t *testing.T) {
	repo := newFakeRepo(bookingInterval(1, 7, 1, 5))
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		IntervalID: 1,
		Kind:       domain.KindBooking,
		StartDate:  day(10),
		EndDate:    day(14),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Ivan Petrov", *resp.CustomerName, "metadata без override сохраняется")
	require.NotNil(t, resp.TotalCost)
	assert.Equal(t, float64(350), *resp.TotalCost)
}

func TestExecute_MetadataOverride(t *testing.T) {
	repo := newFakeRepo(bookingInterval(1, 7, 1, 5))
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		IntervalID:   1,
		Kind:         domain.KindBooking,
		StartDate:    day(10),
		EndDate:      day(14),
		CustomerName: ptr.Ptr("Olga Sidorova"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Olga Sidorova", *resp.CustomerName)
	require.NotNil(t, resp.TotalCost)
	assert.Equal(t, float64(350), *resp.TotalCost, "незаданные поля остаются прежними")
}

func TestExecute_ConflictRollsBack(t *testing.T) {
	// Интервал 1 переносится на даты, занятые интервалом 2
	repo := newFakeRepo(
		bookingInterval(1, 7, 1, 5),
		bookingInterval(2, 7, 10, 15),
	)
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		IntervalID: 1,
		Kind:       domain.KindBooking,
		StartDate:  day(12),
		EndDate:    day(18),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntervalConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(2), conflict.Existing.ID)

	restored, getErr := repo.GetByID(context.Background(), 1)
	require.NoError(t, getErr, "откат возвращает интервал на место")
	assert.Equal(t, day(1), restored.StartDate)
	assert.Equal(t, day(5), restored.EndDate)
}

func TestExecute_SamePeriodNoSelfConflict(t *testing.T) {
	// Перенос на те же даты не конфликтует сам с собой:
	// интервал удаляется до проверки пересечений
	repo := newFakeRepo(bookingInterval(1, 7, 1, 5))
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		IntervalID: 1,
		Kind:       domain.KindBooking,
		StartDate:  day(1),
		EndDate:    day(5),
	})

	require.NoError(t, err)
	assert.Equal(t, day(1), resp.StartDate)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{
		IntervalID: 99,
		Kind:       domain.KindBooking,
		StartDate:  day(1),
		EndDate:    day(5),
	})

	assert.ErrorIs(t, err, ErrIntervalNotFound)
}

func TestExecute_KindMismatch(t *testing.T) {
	repo := newFakeRepo(bookingInterval(1, 7, 1, 5))
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		IntervalID: 1,
		Kind:       domain.KindMaintenance,
		StartDate:  day(10),
		EndDate:    day(14),
	})

	assert.ErrorIs(t, err, ErrKindMismatch)

	_, getErr := repo.GetByID(context.Background(), 1)
	assert.NoError(t, getErr, "интервал остаётся нетронутым")
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(newFakeRepo())

	t.Run("нулевой intervalId", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Kind:      domain.KindBooking,
			StartDate: day(1),
			EndDate:   day(5),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start не раньше end", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			IntervalID: 1,
			Kind:       domain.KindBooking,
			StartDate:  day(5),
			EndDate:    day(5),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
