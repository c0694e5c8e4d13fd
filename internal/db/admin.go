package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoAdminCollection implements AdminCollection for MongoDB.
type MongoAdminCollection struct {
	Collection *mongo.Collection
}

// InsertAdmin inserts a new admin profile and returns its id.
func (c *MongoAdminCollection) InsertAdmin(ctx context.Context, admin models.Admin) (string, error) {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()

	if _, err := c.Collection.InsertOne(ctx, admin); err != nil {
		return "", err
	}
	return admin.ID.Hex(), nil
}
