package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoAttendanceCollection implements AttendanceCollection for MongoDB.
type MongoAttendanceCollection struct {
	Collection *mongo.Collection
}

// InsertAttendance inserts a new attendance record and returns its id.
func (c *MongoAttendanceCollection) InsertAttendance(ctx context.Context, record models.DriverAttendance) (string, error) {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if _, err := c.Collection.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID.Hex(), nil
}

// FindAttendanceByID finds an attendance record by id.
func (c *MongoAttendanceCollection) FindAttendanceByID(ctx context.Context, id string) (*models.DriverAttendance, error) {
	oid, err := objectIDFor("attendance record", id)
	if err != nil {
		return nil, err
	}

	var record models.DriverAttendance
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "attendance record"}
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindAttendance queries attendance records by driver and date range.
func (c *MongoAttendanceCollection) FindAttendance(ctx context.Context, query AttendanceQuery) ([]models.DriverAttendance, error) {
	filter := bson.M{}
	if query.DriverID != "" {
		filter["driver_id"] = query.DriverID
	}
	dateRange := bson.M{}
	if query.Start != nil {
		dateRange["$gte"] = *query.Start
	}
	if query.End != nil {
		dateRange["$lte"] = *query.End
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []models.DriverAttendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceAttendance saves the whole attendance record.
func (c *MongoAttendanceCollection) ReplaceAttendance(ctx context.Context, id string, record models.DriverAttendance) error {
	oid, err := objectIDFor("attendance record", id)
	if err != nil {
		return err
	}
	record.ID = oid

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, record)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "attendance record"}
	}
	return nil
}

// DeleteAttendance removes an attendance record.
func (c *MongoAttendanceCollection) DeleteAttendance(ctx context.Context, id string) error {
	oid, err := objectIDFor("attendance record", id)
	if err != nil {
		return err
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "attendance record"}
	}
	return nil
}
