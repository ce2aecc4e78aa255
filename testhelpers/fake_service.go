package testhelpers

import (
	"context"
	"strconv"
	"sync"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
)

// FakeService is an in-memory DataService that counts calls per operation
// and returns injected errors.
type FakeService struct {
	mu            sync.Mutex
	properties    []models.Property
	conversations []models.Conversation
	nextID        int

	Calls map[string]int
	Errs  map[string]error
}

func NewFakeService(properties []models.Property, conversations []models.Conversation) *FakeService {
	return &FakeService{
		properties:    append([]models.Property(nil), properties...),
		conversations: append([]models.Conversation(nil), conversations...),
		nextID:        len(properties) + 100,
		Calls:         map[string]int{},
		Errs:          map[string]error{},
	}
}

// Fail makes every later call to op return err.
func (f *FakeService) Fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errs[op] = err
}

func (f *FakeService) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[op]
}

func (f *FakeService) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
	return f.Errs[op]
}

func (f *FakeService) Properties() []models.Property {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Property(nil), f.properties...)
}

// AppendMessage adds msg to conversation id the way an external writer
// would, without going through the DataService.
func (f *FakeService) AppendMessage(id string, msg models.Message) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.conversations {
		if f.conversations[i].ID == id {
			msgs := append([]models.Message(nil), f.conversations[i].Messages...)
			f.conversations[i].Messages = append(msgs, msg)
			return true
		}
	}
	return false
}

func (f *FakeService) GetProperties(ctx context.Context) ([]models.Property, error) {
	if err := f.record("GetProperties"); err != nil {
		return nil, err
	}
	return f.Properties(), nil
}

func (f *FakeService) GetProperty(ctx context.Context, id string) (models.Property, error) {
	if err := f.record("GetProperty"); err != nil {
		return models.Property{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, services.ErrNotFound
}

func (f *FakeService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if err := f.record("CreateProperty"); err != nil {
		return models.Property{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = "p" + strconv.Itoa(f.nextID)
	f.properties = append(f.properties, p)
	return p, nil
}

func (f *FakeService) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if err := f.record("UpdateProperty"); err != nil {
		return models.Property{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.properties {
		if f.properties[i].ID == p.ID {
			f.properties[i] = p
			return p, nil
		}
	}
	return models.Property{}, services.ErrNotFound
}

func (f *FakeService) DeleteProperty(ctx context.Context, id string) error {
	if err := f.record("DeleteProperty"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.properties {
		if f.properties[i].ID == id {
			f.properties = append(f.properties[:i], f.properties[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *FakeService) GetConversations(ctx context.Context) ([]models.Conversation, error) {
	if err := f.record("GetConversations"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Conversation{}, f.conversations...), nil
}

func (f *FakeService) GetConversationsByProperty(ctx context.Context, propertyID string) ([]models.Conversation, error) {
	if err := f.record("GetConversationsByProperty"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Conversation{}
	for _, c := range f.conversations {
		if c.PropertyID == propertyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeService) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	if err := f.record("GetConversation"); err != nil {
		return models.Conversation{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Conversation{}, services.ErrNotFound
}

var _ services.DataService = (*FakeService)(nil)
