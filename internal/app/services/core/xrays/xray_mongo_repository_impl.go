package xrays

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type XrayMongoRepository struct {
	Collection *mongo.Collection
}

func NewXrayMongoRepository(db *mongo.Client, dbName string) XrayRepository {
	return &XrayMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionXrayRecords),
	}
}

func (r *XrayMongoRepository) CreateXrayRecord(ctx context.Context, record *models.XrayRecord) (string, error) {
	record.ID = primitive.NewObjectID().Hex()
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (r *XrayMongoRepository) FindByID(ctx context.Context, recordID string) (*models.XrayRecord, error) {
	var record models.XrayRecord
	err := r.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *XrayMongoRepository) FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.XrayRecord, int, error) {
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

	records := make([]models.XrayRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, int(total), nil
}

func (r *XrayMongoRepository) UpdateXrayRecord(ctx context.Context, record *models.XrayRecord) error {
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

func (r *XrayMongoRepository) DeleteByID(ctx context.Context, recordID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrRecordNotFound(nil)
	}
	return nil
}

func (r *XrayMongoRepository) CountAll(ctx context.Context) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

func (r *XrayMongoRepository) CountCreatedInRange(ctx context.Context, from, to time.Time) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

func (r *XrayMongoRepository) CountCreatedSince(ctx context.Context, from time.Time) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from},
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

func (r *XrayMongoRepository) CountGroupedBy(ctx context.Context, field string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	grouped := make(map[string]int, len(rows))
	for _, row := range rows {
		key := row.ID
		if key == "" {
			key = constvars.ResponseUnknown
		}
		grouped[key] = row.Count
	}
	return grouped, nil
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
