package views

import (
	"context"
	"errors"

	"github.com/dcode-github/property_dashboard/metrics"
	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/utils"
)

const (
	msgPropertiesLoadFailed = "Erreur lors du chargement des propriétés"
	msgDeleteFailed         = "Erreur lors de la suppression"
	msgSaveFailed           = "Erreur lors de l'enregistrement"
	msgPropertyNotFound     = "Propriété introuvable"
	msgInvalidPropertyID    = "Identifiant de propriété invalide"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
	ErrFormClosed      = errors.New("property form is not open")
	ErrInvalidDraft    = errors.New("property draft is invalid")
)

type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// PropertyForm is the create/edit form state. Draft is a copy; edits to it
// never reach the list until saved.
type PropertyForm struct {
	Mode        FormMode
	Draft       models.Property
	FieldErrors map[string]string
	Error       string
}

func (f PropertyForm) Open() bool { return f.Mode != FormClosed }

type PropertyListView struct {
	svc       services.DataService
	autoPilot *AutoPilotStore

	state         LoadState
	properties    []models.Property
	form          PropertyForm
	pendingDelete string
	banner        string
}

func NewPropertyListView(svc services.DataService, autoPilot *AutoPilotStore) *PropertyListView {
	return &PropertyListView{svc: svc, autoPilot: autoPilot}
}

// Load fetches the property list from the data service.
func (v *PropertyListView) Load(ctx context.Context) {
	v.state = loading()
	properties, err := v.svc.GetProperties(ctx)
	if err != nil {
		metrics.DataServiceErrors.WithLabelValues("GetProperties").Inc()
		utils.LoggerFromContext(ctx).WithError(err).Error("Property list load failed")
		v.properties = nil
		v.state = failed(msgPropertiesLoadFailed)
		return
	}
	v.properties = properties
	v.state = loaded()
}

func (v *PropertyListView) State() LoadState { return v.state }

func (v *PropertyListView) Properties() []models.Property { return v.properties }

// Empty reports the "no property yet" state, which is hidden while a
// banner is showing.
func (v *PropertyListView) Empty() bool {
	return v.state.Phase() == Loaded && len(v.properties) == 0 && v.banner == ""
}

func (v *PropertyListView) Property(id string) (models.Property, bool) {
	for _, p := range v.properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

func (v *PropertyListView) Form() PropertyForm { return v.form }

func (v *PropertyListView) OpenCreateForm() {
	v.form = PropertyForm{Mode: FormCreate}
}

// OpenEditForm opens the form pre-filled with the current values of one
// property. The list itself is left untouched.
func (v *PropertyListView) OpenEditForm(id string) error {
	p, ok := v.Property(id)
	if !ok {
		return ErrUnknownProperty
	}
	v.form = PropertyForm{Mode: FormEdit, Draft: p.Clone()}
	return nil
}

func (v *PropertyListView) CloseForm() {
	v.form = PropertyForm{}
}

// SaveForm validates the draft and hands it to the data service. On
// success the local list is updated and the form closes; on failure the
// form stays open with its errors.
func (v *PropertyListView) SaveForm(ctx context.Context, draft models.Property) error {
	if !v.form.Open() {
		return ErrFormClosed
	}
	if v.form.Mode == FormEdit {
		draft.ID = v.form.Draft.ID
	}
	v.form.Draft = draft
	v.form.Error = ""

	if fieldErrs := validateProperty(draft); fieldErrs != nil {
		v.form.FieldErrors = fieldErrs
		return ErrInvalidDraft
	}
	v.form.FieldErrors = nil

	var (
		saved models.Property
		err   error
		op    = "UpdateProperty"
	)
	if v.form.Mode == FormCreate {
		op = "CreateProperty"
		saved, err = v.svc.CreateProperty(ctx, draft)
	} else {
		saved, err = v.svc.UpdateProperty(ctx, draft)
	}
	if err != nil {
		metrics.DataServiceErrors.WithLabelValues(op).Inc()
		utils.LoggerFromContext(ctx).WithError(err).Errorf("Saving property %q failed", draft.Name)
		v.form.Error = msgSaveFailed
		return err
	}

	v.upsert(saved)
	v.CloseForm()
	return nil
}

func (v *PropertyListView) upsert(p models.Property) {
	for i := range v.properties {
		if v.properties[i].ID == p.ID {
			v.properties[i] = p
			return
		}
	}
	v.properties = append(v.properties, p)
}

// RequestDelete stages a delete until the user confirms it.
func (v *PropertyListView) RequestDelete(id string) error {
	if _, ok := v.Property(id); !ok {
		return ErrUnknownProperty
	}
	v.pendingDelete = id
	return nil
}

func (v *PropertyListView) PendingDelete() string { return v.pendingDelete }

func (v *PropertyListView) CancelDelete() { v.pendingDelete = "" }

// ConfirmDelete performs the staged delete. A failure leaves the list as
// it was and raises the error banner.
func (v *PropertyListView) ConfirmDelete(ctx context.Context) error {
	id := v.pendingDelete
	if id == "" {
		return ErrNoPendingDelete
	}
	v.pendingDelete = ""

	if err := v.svc.DeleteProperty(ctx, id); err != nil {
		metrics.DataServiceErrors.WithLabelValues("DeleteProperty").Inc()
		utils.LoggerFromContext(ctx).WithError(err).Errorf("Deleting property %s failed", id)
		v.banner = deleteFailureMessage(err)
		return err
	}

	kept := v.properties[:0:0]
	for _, p := range v.properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	v.properties = kept
	v.autoPilot.Forget(id)
	return nil
}

// deleteFailureMessage localizes the sentinel errors. Any other service
// error keeps its own text.
func deleteFailureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return msgPropertyNotFound
	case errors.Is(err, services.ErrInvalidID):
		return msgInvalidPropertyID
	case err.Error() == "":
		return msgDeleteFailed
	default:
		return err.Error()
	}
}

func (v *PropertyListView) Banner() string { return v.banner }

func (v *PropertyListView) DismissError() { v.banner = "" }

func (v *PropertyListView) AutoPilot(id string) bool { return v.autoPilot.Get(id) }

// ToggleAutoPilot flips the flag of one property. Nothing leaves the process.
func (v *PropertyListView) ToggleAutoPilot(id string) bool {
	return v.autoPilot.Toggle(id)
}

// ViewConversations builds the navigation to the property's conversations,
// carrying its current auto-pilot value.
func (v *PropertyListView) ViewConversations(id string) Navigation {
	on := v.autoPilot.Get(id)
	return Navigation{
		Path:  "/conversations/" + id,
		State: NavState{AutoPilot: &on},
	}
}
