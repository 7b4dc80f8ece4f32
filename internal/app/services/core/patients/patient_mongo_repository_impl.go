package patients

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) AppendTestGroup(ctx context.Context, patientID string, group *models.TestGroup) error {
	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$push": bson.M{"recommendedTests": group}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

func (r *PatientMongoRepository) UpdateTestItem(ctx context.Context, patientID, testID string, item *models.TestItem) error {
	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"recommendedTests.$[g].tests.$[t].status":        item.Status,
		"recommendedTests.$[g].tests.$[t].result":        item.Result,
		"recommendedTests.$[g].tests.$[t].resultDate":    item.ResultDate,
		"recommendedTests.$[g].tests.$[t].completedDate": item.CompletedDate,
		"recommendedTests.$[g].tests.$[t].performedBy":   item.PerformedBy,
		"recommendedTests.$[g].tests.$[t].labTechnician": item.LabTechnician,
	}}
	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"g.tests.testId": testID},
			bson.M{"t.testId": testID},
		},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update, options.Update().SetArrayFilters(arrayFilters))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	if result.ModifiedCount == 0 {
		// The patient matched but the array filters hit no element: the id
		// disappeared between read and write.
		return ErrStaleTestID
	}
	return nil
}

func (r *PatientMongoRepository) ReplaceRecommendedTests(ctx context.Context, patientID string, groups []models.TestGroup) error {
	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"recommendedTests": groups}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}
