package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dcode-github/property_dashboard/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	properties    *mongo.Collection
	conversations *mongo.Collection
}

func NewMongoStore(properties, conversations *mongo.Collection) *MongoStore {
	return &MongoStore{properties: properties, conversations: conversations}
}

func (s *MongoStore) GetProperties(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.properties.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("finding properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return properties, nil
}

func (s *MongoStore) GetProperty(ctx context.Context, id string) (models.Property, error) {
	var p models.Property
	if err := validID(id); err != nil {
		return p, err
	}
	err := s.properties.FindOne(ctx, idFilter(id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("finding property %s: %w", id, err)
	}
	return p, nil
}

func (s *MongoStore) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	p.ID = primitive.NewObjectID().Hex()
	if _, err := s.properties.InsertOne(ctx, p); err != nil {
		return models.Property{}, fmt.Errorf("inserting property: %w", err)
	}
	return p, nil
}

func (s *MongoStore) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if err := validID(p.ID); err != nil {
		return models.Property{}, err
	}
	// The stored _id may be an ObjectID; leaving it out of the replacement
	// keeps whatever type the document already has.
	replacement := p
	replacement.ID = ""
	res, err := s.properties.ReplaceOne(ctx, idFilter(p.ID), replacement)
	if err != nil {
		return models.Property{}, fmt.Errorf("updating property %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.Property{}, ErrNotFound
	}
	return p, nil
}

func (s *MongoStore) DeleteProperty(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	res, err := s.properties.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return fmt.Errorf("deleting property %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) GetConversations(ctx context.Context) ([]models.Conversation, error) {
	return s.findConversations(ctx, bson.M{})
}

func (s *MongoStore) GetConversationsByProperty(ctx context.Context, propertyID string) ([]models.Conversation, error) {
	if err := validID(propertyID); err != nil {
		return nil, err
	}
	return s.findConversations(ctx, bson.M{"propertyId": propertyID})
}

func (s *MongoStore) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	var c models.Conversation
	if err := validID(id); err != nil {
		return c, err
	}
	err := s.conversations.FindOne(ctx, idFilter(id)).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c, ErrNotFound
	}
	if err != nil {
		return c, fmt.Errorf("finding conversation %s: %w", id, err)
	}
	return c, nil
}

func (s *MongoStore) findConversations(ctx context.Context, filter bson.M) ([]models.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "checkIn", Value: -1}})
	cursor, err := s.conversations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding conversations: %w", err)
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("decoding conversations: %w", err)
	}
	return conversations, nil
}

// idFilter matches id stored either as a string or, when id is a valid hex
// ObjectID, as the ObjectID written by a plain Mongo insert.
func idFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
}

func validID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "$/ ") {
		return ErrInvalidID
	}
	return nil
}
