package views

import (
	"net/url"
	"strconv"

	"github.com/dcode-github/property_dashboard/models"
)

// NavState is the transient context carried along a navigation. It is
// never persisted.
type NavState struct {
	// AutoPilot is handed from the property list to the conversation list.
	AutoPilot *bool
	// Conversation and PropertyAutoPilot are handed to the detail view.
	Conversation      *models.Conversation
	PropertyAutoPilot *bool
}

type Navigation struct {
	Path  string
	State NavState
}

// URL renders the navigation as a link. Flags travel as query parameters;
// the conversation itself is looked up again by the id in the path.
func (n Navigation) URL() string {
	q := url.Values{}
	if n.State.AutoPilot != nil {
		q.Set("autoPilot", strconv.FormatBool(*n.State.AutoPilot))
	}
	if n.State.PropertyAutoPilot != nil {
		q.Set("propertyAutoPilot", strconv.FormatBool(*n.State.PropertyAutoPilot))
	}
	if len(q) == 0 {
		return n.Path
	}
	return n.Path + "?" + q.Encode()
}

// ParseFlag reads an optional boolean navigation flag from a query value.
func ParseFlag(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
