package appointments

import (
	"context"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/app/models"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type appointmentDocument struct {
	Position int    `bson:"position"`
	Name     string `bson:"name"`
	Day      int    `bson:"day"`
	Hour     int    `bson:"hour"`
}

type appointmentMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.LedgerRepository {
	return &appointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
		Log:        logger,
	}
}

// EnsureAppointmentIndexes makes the collection reject a second booking for a slot
// and a second document for a position.
func EnsureAppointmentIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionAppointments)
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "day", Value: 1}, {Key: "hour", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("appointments_slot_unique"),
		},
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("appointments_position_unique"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *appointmentMongoRepository) Driver() string {
	return constvars.LedgerDriverMongo
}

func (repo *appointmentMongoRepository) Load(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentMongoRepository.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var documents []appointmentDocument
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	ledger := make([]models.Booking, 0, len(documents))
	slots := make(slotRegistry, len(documents))
	for _, document := range documents {
		booking := models.Booking{Name: document.Name, Day: models.Day(document.Day), Hour: document.Hour}
		if err := booking.Validate(); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		if err := slots.claim(booking.Slot(), document.Position); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		ledger = append(ledger, booking)
	}

	repo.Log.Debug("appointmentMongoRepository.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)
	return ledger, nil
}

// Persist writes every booking over the document at its position, then drops
// documents past the end of the ledger. A failed write leaves earlier documents in place.
func (repo *appointmentMongoRepository) Persist(ctx context.Context, ledger []models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("appointmentMongoRepository.Persist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLedgerLengthKey, len(ledger)),
	)

	if len(ledger) > 0 {
		writes := make([]mongo.WriteModel, 0, len(ledger))
		for position, booking := range ledger {
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"position": position}).
				SetReplacement(appointmentDocument{
					Position: position,
					Name:     booking.Name,
					Day:      booking.Day.Number(),
					Hour:     booking.Hour,
				}).
				SetUpsert(true))
		}
		_, err := repo.Collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
		if err != nil {
			repo.Log.Error("appointmentMongoRepository.Persist error writing bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrMongoDBReplaceDocuments(err)
		}
	}

	_, err := repo.Collection.DeleteMany(ctx, bson.M{"position": bson.M{"$gte": len(ledger)}})
	if err != nil {
		repo.Log.Error("appointmentMongoRepository.Persist error trimming stale bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBReplaceDocuments(err)
	}

	repo.Log.Debug("appointmentMongoRepository.Persist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
