package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/drivers/database"
	"opd-scheduler-service/internal/app/drivers/logger"
	"opd-scheduler-service/internal/app/services/core/appointments"
	"opd-scheduler-service/internal/app/services/shared/events"
	"opd-scheduler-service/internal/app/services/shared/locker"
	redisRepository "opd-scheduler-service/internal/app/services/shared/redis"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"
	"opd-scheduler-service/internal/pkg/utils"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"
)

const usage = `usage: ledger <command> [flags]

commands:
  book   -name NAME -day DAY -hour HOUR   book a free slot
  list                                   print every booking
  slots  [-day DAY]                      print free slots
`

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before main exits.
func realMain(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	usecase, closeBackends := buildUsecase(internalConfig, driverConfig, log)
	defer closeBackends()

	ctx, cancel := context.WithTimeout(context.Background(), internalConfig.RequestTimeout())
	defer cancel()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	err := run(ctx, usecase, args[0], args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, usecase contracts.AppointmentUsecase, command string, args []string, out io.Writer) error {
	switch command {
	case "book":
		return runBook(ctx, usecase, args, out)
	case "list":
		return runList(ctx, usecase, out)
	case "slots":
		return runSlots(ctx, usecase, args, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func buildUsecase(internalConfig *config.InternalConfig, driverConfig *config.DriverConfig, log *zap.Logger) (contracts.AppointmentUsecase, func()) {
	backends, err := appointments.ConnectLedgerBackends(internalConfig, driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect ledger store", zap.Error(err))
	}

	var redisRepo contracts.RedisRepository
	bootstrap := &config.Bootstrap{
		Logger:       log,
		SQLDB:        backends.SQLDB,
		MongoDB:      backends.MongoClient,
		DriverConfig: driverConfig,
	}
	if internalConfig.Locker.Driver == constvars.LockerDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
		redisRepo = redisRepository.NewRedisRepository(bootstrap.Redis)
	}

	lockService, err := locker.NewLockerService(internalConfig.Locker.Driver, redisRepo, internalConfig.LockDirectory(driverConfig), log)
	if err != nil {
		log.Fatal("Failed to create locker service", zap.Error(err))
	}

	ledgerRepository, err := appointments.NewLedgerRepository(internalConfig.Ledger.Driver, backends, log)
	if err != nil {
		log.Fatal("Failed to create ledger repository", zap.Error(err))
	}

	usecase := appointments.NewAppointmentUsecase(ledgerRepository, lockService, events.NewNoopPublisher(log), nil, internalConfig, log)
	return usecase, func() { _ = bootstrap.Shutdown(context.Background()) }
}

// describeError prefers the client facing message of a CustomError.
func describeError(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func printTable(out io.Writer, header string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
