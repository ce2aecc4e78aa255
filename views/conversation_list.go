package views

import (
	"context"
	"sync"

	"github.com/dcode-github/property_dashboard/metrics"
	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/utils"
)

const (
	msgConversationsLoadFailed = "Erreur lors du chargement des conversations"
	titleAllConversations      = "Toutes les conversations"
	titlePropertyConversations = "Conversations de la propriété"

	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
)

// Scope selects which conversations a list shows. An empty PropertyID
// means all of them. AutoPilot is the flag inherited from the property
// list, nil when the list was opened directly.
type Scope struct {
	PropertyID string
	AutoPilot  *bool
}

type TagBadge struct {
	Tag   models.EmergencyTag
	Label string
	Icon  string
	Color string
}

type MessageSummary struct {
	Text      string
	Timestamp string
}

type ConversationRow struct {
	ID           string
	GuestName    string
	Tags         []TagBadge
	DateRange    string
	MessageCount int
	LastMessage  *MessageSummary
}

type ConversationListView struct {
	svc services.DataService

	mu            sync.Mutex
	generation    uint64
	scope         Scope
	state         LoadState
	conversations []models.Conversation
}

func NewConversationListView(svc services.DataService) *ConversationListView {
	return &ConversationListView{svc: svc}
}

// Mount performs the single fetch for a scope. Results of a fetch that was
// overtaken by a later Mount are dropped. A failed view stays failed.
func (v *ConversationListView) Mount(ctx context.Context, scope Scope) {
	v.mu.Lock()
	if v.state.Phase() == Failed {
		v.mu.Unlock()
		return
	}
	v.generation++
	gen := v.generation
	v.scope = scope
	v.state = loading()
	v.conversations = nil
	v.mu.Unlock()

	var (
		conversations []models.Conversation
		err           error
		op            = "GetConversations"
	)
	if scope.PropertyID != "" {
		op = "GetConversationsByProperty"
		conversations, err = v.svc.GetConversationsByProperty(ctx, scope.PropertyID)
	} else {
		conversations, err = v.svc.GetConversations(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		utils.LoggerFromContext(ctx).Debugf("Dropping stale conversation fetch for scope %q", scope.PropertyID)
		return
	}
	if err != nil {
		metrics.DataServiceErrors.WithLabelValues(op).Inc()
		utils.LoggerFromContext(ctx).WithError(err).Error("Erreur de chargement des conversations")
		v.state = failed(msgConversationsLoadFailed)
		return
	}
	v.conversations = conversations
	v.state = loaded()
}

func (v *ConversationListView) State() LoadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ConversationListView) Scope() Scope {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scope
}

func (v *ConversationListView) Title() string {
	if v.Scope().PropertyID != "" {
		return titlePropertyConversations
	}
	return titleAllConversations
}

// ShowBack reports whether the list was reached from a property.
func (v *ConversationListView) ShowBack() bool {
	return v.Scope().PropertyID != ""
}

func (v *ConversationListView) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Phase() == Loaded && len(v.conversations) == 0
}

func (v *ConversationListView) Rows() []ConversationRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Phase() != Loaded {
		return nil
	}
	rows := make([]ConversationRow, 0, len(v.conversations))
	for _, c := range v.conversations {
		rows = append(rows, buildRow(c))
	}
	return rows
}

func buildRow(c models.Conversation) ConversationRow {
	row := ConversationRow{
		ID:           c.ID,
		GuestName:    c.GuestName,
		DateRange:    c.CheckIn.Format(dateLayout) + " - " + c.CheckOut.Format(dateLayout),
		MessageCount: len(c.Messages),
	}
	for _, tag := range c.EmergencyTags {
		if !tag.Valid() {
			continue
		}
		row.Tags = append(row.Tags, TagBadge{
			Tag:   tag,
			Label: tag.Label(),
			Icon:  tag.Icon(),
			Color: tag.Color(),
		})
	}
	if last, ok := c.LastMessage(); ok {
		row.LastMessage = &MessageSummary{
			Text:      last.Text,
			Timestamp: last.Timestamp.Format(dateTimeLayout),
		}
	}
	return row
}

// Select builds the navigation to a conversation's detail view, forwarding
// the conversation and the inherited auto-pilot flag.
func (v *ConversationListView) Select(id string) (Navigation, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.conversations {
		if v.conversations[i].ID == id {
			c := v.conversations[i]
			return Navigation{
				Path: "/chat/" + id,
				State: NavState{
					Conversation:      &c,
					PropertyAutoPilot: v.scope.AutoPilot,
				},
			}, nil
		}
	}
	return Navigation{}, services.ErrNotFound
}
