package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rectransport/rideshare-api/internal/domain"
	"github.com/rectransport/rideshare-api/internal/models"
)

// MongoUserCollection implements UserCollection for MongoDB.
type MongoUserCollection struct {
	Collection *mongo.Collection
}

// InsertUser inserts a new user and returns its id.
func (c *MongoUserCollection) InsertUser(ctx context.Context, user models.User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsActive = true

	if _, err := c.Collection.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// FindUserByID finds a user by id.
func (c *MongoUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectIDFor("user", id)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail finds a user by email.
func (c *MongoUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := c.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUsersByIDs finds users whose id is in the given set. Used by the
// bulk-join reads to avoid one lookup per record.
func (c *MongoUserCollection) FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDsFor(ids)}})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindAllUsers returns every user record.
func (c *MongoUserCollection) FindAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceUser saves the whole user record.
func (c *MongoUserCollection) ReplaceUser(ctx context.Context, id string, user models.User) error {
	oid, err := objectIDFor("user", id)
	if err != nil {
		return err
	}
	user.ID = oid
	user.UpdatedAt = time.Now()

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
