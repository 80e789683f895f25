package appointments

import (
	"context"
	"database/sql"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/queries"

	"go.uber.org/zap"
)

// appointmentSQLRepository serves both the postgres and sqlite drivers; only the insert placeholders differ.
type appointmentSQLRepository struct {
	DB          *sql.DB
	DriverName  string
	InsertQuery string
	Log         *zap.Logger
}

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.LedgerRepository {
	return &appointmentSQLRepository{
		DB:          db,
		DriverName:  constvars.LedgerDriverPostgres,
		InsertQuery: queries.InsertAppointmentPostgres,
		Log:         logger,
	}
}

func NewAppointmentSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.LedgerRepository {
	return &appointmentSQLRepository{
		DB:          db,
		DriverName:  constvars.LedgerDriverSQLite,
		InsertQuery: queries.InsertAppointmentSQLite,
		Log:         logger,
	}
}

func (repo *appointmentSQLRepository) Driver() string {
	return repo.DriverName
}

func (repo *appointmentSQLRepository) Load(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentSQLRepository.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLedgerDriverKey, repo.DriverName),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllAppointments)
	if err != nil {
		repo.Log.Error("appointmentSQLRepository.Load error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSQLFindData(err, repo.DriverName)
	}
	defer rows.Close()

	ledger := []models.Booking{}
	slots := make(slotRegistry)
	for rows.Next() {
		var (
			booking   models.Booking
			dayNumber int
		)
		if err := rows.Scan(&booking.Name, &dayNumber, &booking.Hour); err != nil {
			repo.Log.Error("appointmentSQLRepository.Load error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSQLFindData(err, repo.DriverName)
		}
		booking.Day = models.Day(dayNumber)
		if err := booking.Validate(); err != nil {
			repo.Log.Error("appointmentSQLRepository.Load invalid stored booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSQLFindData(err, repo.DriverName)
		}
		if err := slots.claim(booking.Slot(), len(ledger)); err != nil {
			return nil, exceptions.ErrSQLFindData(err, repo.DriverName)
		}
		ledger = append(ledger, booking)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("appointmentSQLRepository.Load rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSQLFindData(err, repo.DriverName)
	}

	repo.Log.Debug("appointmentSQLRepository.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)
	return ledger, nil
}

// Persist replaces the table contents in a single transaction.
func (repo *appointmentSQLRepository) Persist(ctx context.Context, ledger []models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentSQLRepository.Persist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLedgerDriverKey, repo.DriverName),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)

	err := repo.replaceAll(ctx, ledger)
	if err != nil {
		repo.Log.Error("appointmentSQLRepository.Persist error replacing appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSQLReplaceData(err, repo.DriverName)
	}

	repo.Log.Debug("appointmentSQLRepository.Persist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (repo *appointmentSQLRepository) replaceAll(ctx context.Context, ledger []models.Booking) error {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queries.DeleteAllAppointments); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, repo.InsertQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for position, booking := range ledger {
		_, err := stmt.ExecContext(ctx, position, booking.Name, booking.Day.Number(), booking.Hour)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
