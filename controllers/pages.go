package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/templates"
	"github.com/dcode-github/property_dashboard/utils"
	"github.com/dcode-github/property_dashboard/views"
)

type propertyCard struct {
	models.Property
	AutoPilot        bool
	ConversationsURL string
}

type propertyListPage struct {
	LoadError     string
	Banner        string
	Empty         bool
	Cards         []propertyCard
	Form          views.PropertyForm
	PendingDelete *models.Property
}

type conversationRowLink struct {
	views.ConversationRow
	URL string
}

type conversationListPage struct {
	Title    string
	Error    string
	ShowBack bool
	Empty    bool
	Rows     []conversationRowLink
}

type chatPage struct {
	Conversation models.Conversation
	AutoPilot    bool
}

func PropertyListPage(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := views.NewPropertyListView(svc, store)
		view.Load(r.Context())
		status := http.StatusOK
		if view.State().Phase() == views.Failed {
			status = http.StatusInternalServerError
		}
		renderPropertyList(w, status, view)
	}
}

func NewPropertyForm(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := loadPropertyList(w, r, svc, store)
		if !ok {
			return
		}
		view.OpenCreateForm()
		renderPropertyList(w, http.StatusOK, view)
	}
}

func EditPropertyForm(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := loadPropertyList(w, r, svc, store)
		if !ok {
			return
		}
		if err := view.OpenEditForm(mux.Vars(r)["id"]); err != nil {
			http.Error(w, "Propriété introuvable", http.StatusNotFound)
			return
		}
		renderPropertyList(w, http.StatusOK, view)
	}
}

// SaveProperty handles both form targets: POST /properties creates,
// POST /properties/{id} edits.
func SaveProperty(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Formulaire invalide", http.StatusBadRequest)
			return
		}

		view, ok := loadPropertyList(w, r, svc, store)
		if !ok {
			return
		}
		if id, ok := mux.Vars(r)["id"]; ok {
			if err := view.OpenEditForm(id); err != nil {
				http.Error(w, "Propriété introuvable", http.StatusNotFound)
				return
			}
		} else {
			view.OpenCreateForm()
		}

		err := view.SaveForm(r.Context(), draftFromForm(r))
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, views.ErrInvalidDraft):
			renderPropertyList(w, http.StatusUnprocessableEntity, view)
		default:
			renderPropertyList(w, http.StatusInternalServerError, view)
		}
	}
}

func ConfirmDeletePage(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := loadPropertyList(w, r, svc, store)
		if !ok {
			return
		}
		if err := view.RequestDelete(mux.Vars(r)["id"]); err != nil {
			http.Error(w, "Propriété introuvable", http.StatusNotFound)
			return
		}
		renderPropertyList(w, http.StatusOK, view)
	}
}

// DeletePropertyAction deletes only when the confirmation field is set. A
// failed delete re-renders the list with the error banner.
func DeletePropertyAction(svc services.DataService, store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := loadPropertyList(w, r, svc, store)
		if !ok {
			return
		}
		if err := view.RequestDelete(mux.Vars(r)["id"]); err != nil {
			http.Error(w, "Propriété introuvable", http.StatusNotFound)
			return
		}
		if r.FormValue("confirm") != "yes" {
			view.CancelDelete()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if err := view.ConfirmDelete(r.Context()); err != nil {
			renderPropertyList(w, http.StatusInternalServerError, view)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func ToggleAutoPilotAction(store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Toggle(mux.Vars(r)["id"])
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func ConversationListPage(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := views.NewConversationListView(svc)
		view.Mount(r.Context(), views.Scope{
			PropertyID: mux.Vars(r)["propertyId"],
			AutoPilot:  views.ParseFlag(r.URL.Query().Get("autoPilot")),
		})

		state := view.State()
		page := conversationListPage{
			Title:    view.Title(),
			Error:    state.Error(),
			ShowBack: view.ShowBack(),
			Empty:    view.Empty(),
		}
		for _, row := range view.Rows() {
			nav, err := view.Select(row.ID)
			if err != nil {
				continue
			}
			page.Rows = append(page.Rows, conversationRowLink{ConversationRow: row, URL: nav.URL()})
		}

		status := http.StatusOK
		if state.Phase() == views.Failed {
			status = http.StatusInternalServerError
		}
		render(w, status, "conversations", page)
	}
}

// ChatPage is the landing point of a conversation selection. It only
// shows the thread header and messages.
func ChatPage(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversation, err := svc.GetConversation(r.Context(), mux.Vars(r)["id"])
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidID) {
			http.Error(w, "Conversation introuvable", http.StatusNotFound)
			return
		}
		if err != nil {
			utils.LoggerFromContext(r.Context()).WithError(err).Error("Loading conversation failed")
			http.Error(w, "Erreur lors du chargement de la conversation", http.StatusInternalServerError)
			return
		}
		autoPilot := views.ParseFlag(r.URL.Query().Get("propertyAutoPilot"))
		render(w, http.StatusOK, "chat", chatPage{Conversation: conversation, AutoPilot: autoPilot != nil && *autoPilot})
	}
}

// loadPropertyList loads the list for an action handler. When the data
// service is unreachable it renders the failed list and reports false.
func loadPropertyList(w http.ResponseWriter, r *http.Request, svc services.DataService, store *views.AutoPilotStore) (*views.PropertyListView, bool) {
	view := views.NewPropertyListView(svc, store)
	view.Load(r.Context())
	if view.State().Phase() == views.Failed {
		renderPropertyList(w, http.StatusInternalServerError, view)
		return nil, false
	}
	return view, true
}

func renderPropertyList(w http.ResponseWriter, status int, view *views.PropertyListView) {
	page := propertyListPage{
		LoadError: view.State().Error(),
		Banner:    view.Banner(),
		Empty:     view.Empty(),
		Form:      view.Form(),
	}
	for _, p := range view.Properties() {
		page.Cards = append(page.Cards, propertyCard{
			Property:         p,
			AutoPilot:        view.AutoPilot(p.ID),
			ConversationsURL: view.ViewConversations(p.ID).URL(),
		})
	}
	if id := view.PendingDelete(); id != "" {
		if p, ok := view.Property(id); ok {
			page.PendingDelete = &p
		}
	}
	render(w, status, "properties", page)
}

const msgRenderFailed = "Erreur lors de l'affichage de la page"

// render sends the page only once it rendered completely. A template
// failure becomes a plain 500 instead of the requested status.
func render(w http.ResponseWriter, status int, name string, data any) {
	body, err := templates.Execute(name, data)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Rendering %s failed", name)
		http.Error(w, msgRenderFailed, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func draftFromForm(r *http.Request) models.Property {
	maxGuests, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("maxGuests")))
	return models.Property{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Address: strings.TrimSpace(r.FormValue("address")),
		AccessCodes: models.AccessCodes{
			Wifi: models.WifiCredentials{
				Name:     strings.TrimSpace(r.FormValue("wifiName")),
				Password: r.FormValue("wifiPassword"),
			},
			Door: strings.TrimSpace(r.FormValue("door")),
		},
		HouseRules:   splitLines(r.FormValue("houseRules")),
		Amenities:    splitLines(r.FormValue("amenities")),
		CheckInTime:  strings.TrimSpace(r.FormValue("checkInTime")),
		CheckOutTime: strings.TrimSpace(r.FormValue("checkOutTime")),
		MaxGuests:    maxGuests,
		Photos:       splitLines(r.FormValue("photos")),
	}
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
