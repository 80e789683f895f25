package appointments

import (
	"context"
	"errors"
	"io/fs"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type appointmentCSVRepository struct {
	Path string
	Log  *zap.Logger
}

func NewAppointmentCSVRepository(path string, logger *zap.Logger) contracts.LedgerRepository {
	return &appointmentCSVRepository{
		Path: path,
		Log:  logger,
	}
}

func (repo *appointmentCSVRepository) Driver() string {
	return constvars.LedgerDriverCSV
}

func (repo *appointmentCSVRepository) Load(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentCSVRepository.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLedgerPathKey, repo.Path),
	)

	file, err := os.Open(repo.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Booking{}, nil
	}
	if err != nil {
		repo.Log.Error("appointmentCSVRepository.Load error opening ledger file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageUnavailable(err, repo.Path)
	}
	defer file.Close()

	ledger, err := decodeLedgerCSV(file)
	if err != nil {
		repo.Log.Error("appointmentCSVRepository.Load malformed ledger file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLedgerPathKey, repo.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageUnavailable(err, repo.Path)
	}

	repo.Log.Debug("appointmentCSVRepository.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)
	return ledger, nil
}

// Persist writes the ledger to a temp file next to Path and renames it into place.
func (repo *appointmentCSVRepository) Persist(ctx context.Context, ledger []models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentCSVRepository.Persist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)

	err := repo.writeAtomically(ledger)
	if err != nil {
		repo.Log.Error("appointmentCSVRepository.Persist error writing ledger file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLedgerPathKey, repo.Path),
			zap.Error(err),
		)
		return exceptions.ErrStorageUnavailable(err, repo.Path)
	}

	repo.Log.Debug("appointmentCSVRepository.Persist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (repo *appointmentCSVRepository) writeAtomically(ledger []models.Booking) error {
	dir := filepath.Dir(repo.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(repo.Path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := encodeLedgerCSV(tmp, ledger); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, repo.Path)
}
