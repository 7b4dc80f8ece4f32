package walkins

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

type WalkInMongoRepository struct {
	Collection *mongo.Collection
}

func NewWalkInMongoRepository(db *mongo.Client, dbName string) WalkInRepository {
	return &WalkInMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWalkInRecords),
	}
}

func (r *WalkInMongoRepository) CreateWalkInRecord(ctx context.Context, record *models.WalkInXrayRecord) (string, error) {
	record.ID = primitive.NewObjectID().Hex()
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (r *WalkInMongoRepository) FindByID(ctx context.Context, recordID string) (*models.WalkInXrayRecord, error) {
	var record models.WalkInXrayRecord
	err := r.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *WalkInMongoRepository) FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.WalkInXrayRecord, int, error) {
	filter := buildWalkInListFilter(query)

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

	records := make([]models.WalkInXrayRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, int(total), nil
}

func (r *WalkInMongoRepository) UpdateWalkInRecord(ctx context.Context, record *models.WalkInXrayRecord) error {
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

func (r *WalkInMongoRepository) DeleteByID(ctx context.Context, recordID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrRecordNotFound(nil)
	}
	return nil
}

func (r *WalkInMongoRepository) CountAll(ctx context.Context) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

// buildWalkInListFilter also matches the self-issued walk-in id so front
// desks can search by the slip number.
func buildWalkInListFilter(query *requests.ListRecordsQuery) bson.M {
	filter := bson.M{}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"patientName": pattern},
			{"testName": pattern},
			{"category": pattern},
			{"walkInId": pattern},
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
