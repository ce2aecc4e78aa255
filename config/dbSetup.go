package config

import (
	"context"
	"fmt"
	"time"

	"github.com/dcode-github/property_dashboard/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	PropertyCollection     *mongo.Collection
	ConversationCollection *mongo.Collection
)

func ConnectDB(uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	utils.Logger.Info("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client, dbName string) {
	db := client.Database(dbName)
	PropertyCollection = db.Collection("properties")
	ConversationCollection = db.Collection("conversations")
}

// EnsureIndexes creates the lookup index used by property-scoped
// conversation queries.
func EnsureIndexes(ctx context.Context) error {
	_, err := ConversationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "propertyId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating conversations.propertyId index: %w", err)
	}
	return nil
}

func CloseDBConnection(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		utils.Logger.Errorf("Error closing database connection: %v", err)
		return
	}
	utils.Logger.Info("MongoDB connection closed")
}
