package services

import (
	"context"
	"errors"

	"github.com/dcode-github/property_dashboard/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// DataService is the CRUD surface the dashboard views consume.
type DataService interface {
	GetProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (models.Property, error)
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, p models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error

	GetConversations(ctx context.Context) ([]models.Conversation, error)
	GetConversationsByProperty(ctx context.Context, propertyID string) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id string) (models.Conversation, error)
}
