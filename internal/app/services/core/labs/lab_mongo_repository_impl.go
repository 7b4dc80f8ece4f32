package labs

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LabMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabMongoRepository(db *mongo.Client, dbName string) LabRepository {
	return &LabMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabRecords),
	}
}

func (r *LabMongoRepository) CreateLabRecord(ctx context.Context, record *models.LabRecord) (string, error) {
	record.ID = primitive.NewObjectID().Hex()
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (r *LabMongoRepository) FindByID(ctx context.Context, recordID string) (*models.LabRecord, error) {
	var record models.LabRecord
	err := r.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *LabMongoRepository) FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.LabRecord, int, error) {
	filter := buildListFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.LabRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, int(total), nil
}

func (r *LabMongoRepository) UpdateLabRecord(ctx context.Context, record *models.LabRecord) error {
	update := bson.M{"$set": record}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": record.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrRecordNotFound(nil)
	}
	return nil
}

func (r *LabMongoRepository) DeleteByID(ctx context.Context, recordID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrRecordNotFound(nil)
	}
	return nil
}

// buildListFilter translates the shared list query into a Mongo filter.
func buildListFilter(query *requests.ListRecordsQuery) bson.M {
	filter := bson.M{}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"patientName": pattern},
			{"testName": pattern},
			{"category": pattern},
		}
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	createdAt := bson.M{}
	if query.DateFrom != nil {
		createdAt["$gte"] = *query.DateFrom
	}
	if query.DateTo != nil {
		createdAt["$lt"] = *query.DateTo
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}
	return filter
}
