package appointments

import (
	"context"
	"errors"
	"io"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/app/services/shared/locker"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/dto/requests"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []interface{}
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type memoryStorage struct {
	bucket, object, contentType string
	body                        []byte
}

func (s *memoryStorage) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.bucket, s.object, s.contentType, s.body = bucketName, objectName, contentType, body
	return objectName, nil
}

type failingLedger struct{}

func (failingLedger) Load(ctx context.Context) ([]models.Booking, error) {
	return []models.Booking{}, nil
}
func (failingLedger) Persist(ctx context.Context, ledger []models.Booking) error {
	return errors.Join(models.ErrStorageUnavailable, errors.New("disk full"))
}
func (failingLedger) Driver() string { return "failing" }

type blockedLocker struct{}

func (blockedLocker) TryLock(ctx context.Context, key string, exp time.Duration) (bool, string, error) {
	return false, "", nil
}
func (blockedLocker) Unlock(ctx context.Context, key, lockValue string) error { return nil }

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Locker: config.Locker{
			Driver:       constvars.LockerDriverLocal,
			Expiration:   5 * time.Second,
			PollInterval: time.Millisecond,
		},
		Snapshot: config.Snapshot{BucketName: "opd-ledger"},
	}
}

func newTestUsecase(t *testing.T, repo contracts.LedgerRepository, publisher contracts.EventPublisher, storage contracts.Storage) *appointmentUsecase {
	t.Helper()
	logger := zap.NewNop()
	uc := NewAppointmentUsecase(repo, locker.NewLocalLockService(logger), publisher, storage, testInternalConfig(), logger)
	return uc.(*appointmentUsecase)
}

func TestAppointmentUsecase_BookingScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.csv")
	repo := NewAppointmentCSVRepository(path, zap.NewNop())
	publisher := &recordingPublisher{}
	uc := newTestUsecase(t, repo, publisher, nil)
	ctx := context.Background()

	readFile := func() string {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(content)
	}

	response, err := uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "Alice", Day: "Monday", Hour: 9})
	require.NoError(t, err)
	assert.Equal(t, "Appointment booked for Alice on Monday at 9:00", response.Message)
	assert.Equal(t, "Monday 09:00", response.SlotLabel)
	assert.Equal(t, 1, response.DayNumber)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\n", readFile())

	_, err = uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "Bob", Day: "Monday", Hour: 9})
	assert.ErrorIs(t, err, models.ErrSlotConflict)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\n", readFile())

	_, err = uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "Bob", Day: "Tuesday", Hour: 9})
	require.NoError(t, err)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\nBob,2,9\n", readFile())

	_, err = uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "  ", Day: "Wednesday", Hour: 10})
	assert.ErrorIs(t, err, models.ErrEmptyName)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\nBob,2,9\n", readFile())

	assert.Len(t, publisher.events, 2)
	event, ok := publisher.events[1].(models.AppointmentBookedEvent)
	require.True(t, ok)
	assert.Equal(t, "Bob", event.Name)
	assert.Equal(t, "Tuesday", event.Day)
}

func TestAppointmentUsecase_BookAppointmentRejectsBadInput(t *testing.T) {
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), zap.NewNop())
	uc := newTestUsecase(t, repo, nil, nil)

	_, err := uc.BookAppointment(context.Background(), &requests.CreateAppointmentRequest{Name: "Alice", Day: "Saturday", Hour: 9})
	assert.ErrorIs(t, err, models.ErrInvalidDay)

	_, err = uc.BookAppointment(context.Background(), &requests.CreateAppointmentRequest{Name: "Alice", Day: "Monday", Hour: 17})
	assert.ErrorIs(t, err, models.ErrInvalidHour)
}

func TestAppointmentUsecase_PublishFailureDoesNotFailBooking(t *testing.T) {
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), zap.NewNop())
	uc := newTestUsecase(t, repo, &recordingPublisher{err: errors.New("broker down")}, nil)

	_, err := uc.BookAppointment(context.Background(), &requests.CreateAppointmentRequest{Name: "Alice", Day: "Monday", Hour: 9})
	require.NoError(t, err)

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}

func TestAppointmentUsecase_StorageUnavailable(t *testing.T) {
	uc := newTestUsecase(t, failingLedger{}, nil, nil)

	_, err := uc.BookAppointment(context.Background(), &requests.CreateAppointmentRequest{Name: "Alice", Day: "Monday", Hour: 9})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}

func TestAppointmentUsecase_LedgerBusy(t *testing.T) {
	logger := zap.NewNop()
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), logger)
	uc := NewAppointmentUsecase(repo, blockedLocker{}, nil, nil, testInternalConfig(), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "Alice", Day: "Monday", Hour: 9})
	assert.ErrorIs(t, err, models.ErrLedgerBusy)
}

func TestAppointmentUsecase_ConcurrentBookingsOfSameSlot(t *testing.T) {
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), zap.NewNop())
	uc := newTestUsecase(t, repo, nil, nil)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			_, err := uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: "Patient", Day: "Thursday", Hour: 11})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, models.ErrSlotConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}

func TestAppointmentUsecase_SeparateInstancesShareFileLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appointments.csv")
	logger := zap.NewNop()

	// Two wirings over one CSV file, as the HTTP server and the ledger CLI run side by side.
	newInstance := func() contracts.AppointmentUsecase {
		repo := NewAppointmentCSVRepository(path, logger)
		return NewAppointmentUsecase(repo, locker.NewFileLockService(dir, logger), nil, nil, testInternalConfig(), logger)
	}
	instances := []contracts.AppointmentUsecase{newInstance(), newInstance()}
	names := []string{"Alice", "Bob"}

	const perInstance = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []string
		conflicts int
	)
	for i, uc := range instances {
		for j := 0; j < perInstance; j++ {
			wg.Add(1)
			go func(uc contracts.AppointmentUsecase, name string) {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				_, err := uc.BookAppointment(ctx, &requests.CreateAppointmentRequest{Name: name, Day: "Monday", Hour: 9})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winners = append(winners, name)
				case errors.Is(err, models.ErrSlotConflict):
					conflicts++
				}
			}(uc, names[i])
		}
	}
	wg.Wait()

	require.Len(t, winners, 1, "exactly one booking of the slot may succeed")
	assert.Equal(t, 2*perInstance-1, conflicts)

	ledger, err := NewAppointmentCSVRepository(path, logger).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Booking{{Name: winners[0], Day: models.Monday, Hour: 9}}, ledger)
}

func TestAppointmentUsecase_ListAndAvailableSlots(t *testing.T) {
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), zap.NewNop())
	uc := newTestUsecase(t, repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, repo.Persist(ctx, []models.Booking{
		{Name: "Alice", Day: models.Monday, Hour: 9},
		{Name: "Bob", Day: models.Friday, Hour: 16},
	}))

	appointments, err := uc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Alice", appointments[0].Name)
	assert.Equal(t, "Friday", appointments[1].Day)

	slots, err := uc.FindAvailableSlots(ctx, &requests.FindAvailableSlotsRequest{Day: "Monday"})
	require.NoError(t, err)
	assert.Len(t, slots, 7)
	assert.Equal(t, 10, slots[0].Hour)

	_, err = uc.FindAvailableSlots(ctx, &requests.FindAvailableSlotsRequest{Day: "Sunday"})
	assert.ErrorIs(t, err, models.ErrInvalidDay)
}

func TestAppointmentUsecase_ExportSnapshot(t *testing.T) {
	repo := NewAppointmentCSVRepository(filepath.Join(t.TempDir(), "appointments.csv"), zap.NewNop())
	ctx := context.Background()
	require.NoError(t, repo.Persist(ctx, []models.Booking{{Name: "Alice", Day: models.Monday, Hour: 9}}))

	_, err := newTestUsecase(t, repo, nil, nil).ExportSnapshot(ctx)
	assert.Error(t, err)

	storage := &memoryStorage{}
	uc := newTestUsecase(t, repo, nil, storage)
	uc.now = func() time.Time { return time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC) }

	snapshot, err := uc.ExportSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opd-ledger", snapshot.Bucket)
	assert.Equal(t, "appointments/20260105T083000Z.csv", snapshot.ObjectName)
	assert.Equal(t, 1, snapshot.Records)
	assert.Equal(t, "Name,Day,Hour\nAlice,1,9\n", string(storage.body))
	assert.Equal(t, constvars.MIMETextCSV, storage.contentType)
}
