package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/testhelpers"
	"github.com/dcode-github/property_dashboard/views"
)

func setup(t *testing.T) (*mux.Router, *testhelpers.FakeService, *views.AutoPilotStore) {
	t.Helper()
	svc := testhelpers.NewFakeService(testhelpers.SampleProperties(), testhelpers.SampleConversations())
	store := views.NewAutoPilotStore()
	router := mux.NewRouter()
	Routes(router, svc, store)
	return router, svc, store
}

func do(router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if method == http.MethodPost && body != "" && !strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPropertyListPage(t *testing.T) {
	router, _, _ := setup(t)
	rec := do(router, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Studio Blois")
	assert.Contains(t, body, "Villa Sunset")
	assert.Contains(t, body, "/conversations/1?autoPilot=false")
	assert.Contains(t, body, "Auto-pilot OFF")
	assert.NotContains(t, body, "property-form")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTogglePageFlipsOnlyOneProperty(t *testing.T) {
	router, _, store := setup(t)
	rec := do(router, http.MethodPost, "/properties/2/autopilot", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	assert.True(t, store.Get("2"))
	assert.False(t, store.Get("1"))

	body := do(router, http.MethodGet, "/", "").Body.String()
	assert.Contains(t, body, "/conversations/2?autoPilot=true")
	assert.Contains(t, body, "/conversations/1?autoPilot=false")
}

func TestEditPageOpensPrefilledForm(t *testing.T) {
	router, svc, _ := setup(t)
	rec := do(router, http.MethodGet, "/properties/2/edit", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="property-form"`)
	assert.Contains(t, body, `action="/properties/2"`)
	assert.Contains(t, body, `value="Villa Sunset"`)
	assert.Contains(t, body, `value="4080#"`)
	assert.Contains(t, body, "Studio Blois")
	assert.Equal(t, testhelpers.SampleProperties(), svc.Properties())

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/properties/zzz/edit", "").Code)
}

func TestCreateThroughForm(t *testing.T) {
	router, svc, _ := setup(t)
	form := url.Values{
		"name":        {"Loft Tours"},
		"address":     {"1 place Plumereau, Tours"},
		"maxGuests":   {"2"},
		"checkInTime": {"16:00"},
		"amenities":   {"TV\nWiFi\n"},
		"photos":      {"https://images.example.com/loft.jpg"},
	}
	rec := do(router, http.MethodPost, "/properties", form.Encode())
	require.Equal(t, http.StatusSeeOther, rec.Code)

	props := svc.Properties()
	require.Len(t, props, 3)
	assert.Equal(t, "Loft Tours", props[2].Name)
	assert.Equal(t, []string{"TV", "WiFi"}, props[2].Amenities)
}

func TestInvalidFormIsRerendered(t *testing.T) {
	router, svc, _ := setup(t)
	form := url.Values{"name": {""}, "address": {"x"}, "maxGuests": {"0"}}
	rec := do(router, http.MethodPost, "/properties", form.Encode())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Champ obligatoire")
	assert.Len(t, svc.Properties(), 2)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	router, svc, _ := setup(t)

	rec := do(router, http.MethodGet, "/properties/1/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Êtes-vous sûr de vouloir supprimer cette propriété ?")

	rec = do(router, http.MethodPost, "/properties/1/delete", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, svc.CallCount("DeleteProperty"))

	rec = do(router, http.MethodPost, "/properties/1/delete", "confirm=yes")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, svc.Properties(), 1)
}

func TestFailedDeleteShowsBannerAndKeepsList(t *testing.T) {
	router, svc, _ := setup(t)
	svc.Fail("DeleteProperty", errors.New("Impossible de supprimer"))

	rec := do(router, http.MethodPost, "/properties/1/delete", "confirm=yes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="error-banner"`)
	assert.Contains(t, body, "Impossible de supprimer")
	assert.Contains(t, body, "Studio Blois")
	assert.Contains(t, body, "Villa Sunset")
	assert.Len(t, svc.Properties(), 2)
}

func TestDeleteOfVanishedPropertyShowsFrenchBanner(t *testing.T) {
	router, svc, _ := setup(t)
	svc.Fail("DeleteProperty", services.ErrNotFound)

	rec := do(router, http.MethodPost, "/properties/2/delete", "confirm=yes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="error-banner"`)
	assert.Contains(t, body, "Propriété introuvable")
	assert.NotContains(t, body, "not found")
}

func TestScopedConversationPage(t *testing.T) {
	router, svc, _ := setup(t)
	rec := do(router, http.MethodGet, "/conversations/1?autoPilot=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Conversations de la propriété")
	assert.Contains(t, body, "Alice Martin")
	assert.Contains(t, body, "Dernier message : Toujours rien")
	assert.Contains(t, body, "/chat/c1?propertyAutoPilot=true")
	assert.Equal(t, 1, strings.Count(body, "last-message"))
	assert.Equal(t, 3, strings.Count(body, "tag-icon"))
	assert.NotContains(t, body, "Chloé Durand")
	assert.NotContains(t, body, "animate-spin")
	assert.Equal(t, 0, svc.CallCount("GetConversations"))
}

func TestScopedConversationPageEmpty(t *testing.T) {
	router, _, _ := setup(t)
	rec := do(router, http.MethodGet, "/conversations/unknown-property", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="empty-state"`)
	assert.Contains(t, body, "Aucune conversation")
	assert.NotContains(t, body, "conversation-row")
}

func TestAllConversationsPage(t *testing.T) {
	router, svc, _ := setup(t)
	rec := do(router, http.MethodGet, "/conversations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "conversation-row"))
	assert.Contains(t, rec.Body.String(), `href="/chat/c3"`)
	assert.Equal(t, 0, svc.CallCount("GetConversationsByProperty"))
}

func TestConversationPageFetchError(t *testing.T) {
	router, svc, _ := setup(t)
	svc.Fail("GetConversations", errors.New("down"))

	rec := do(router, http.MethodGet, "/conversations", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Erreur lors du chargement des conversations")
	assert.NotContains(t, body, "conversation-row")
}

func TestChatPage(t *testing.T) {
	router, _, _ := setup(t)
	rec := do(router, http.MethodGet, "/chat/c1?propertyAutoPilot=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice Martin")
	assert.Contains(t, rec.Body.String(), "Auto-pilot ON")

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/chat/nope", "").Code)
}

func TestAPIPropertiesCRUD(t *testing.T) {
	router, svc, _ := setup(t)

	rec := do(router, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Success bool              `json:"success"`
		Data    []models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.True(t, list.Success)
	assert.Len(t, list.Data, 2)

	payload := `{"name":"Chalet","address":"Chamonix","maxGuests":8}`
	rec = do(router, http.MethodPost, "/api/properties", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(router, http.MethodPost, "/api/properties", `{"address":"nowhere","maxGuests":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")

	rec = do(router, http.MethodPut, "/api/properties/1", `{"name":"Studio Blois II","address":"Blois","maxGuests":4}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	p, err := svc.GetProperty(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Studio Blois II", p.Name)

	rec = do(router, http.MethodDelete, "/api/properties/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(router, http.MethodDelete, "/api/properties/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, svc.Properties(), 2)
}

func TestAPIConversations(t *testing.T) {
	router, _, _ := setup(t)

	rec := do(router, http.MethodGet, "/api/properties/2/conversations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []models.Conversation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, []models.EmergencyTag{models.TagStockProblem}, resp.Data[0].EmergencyTags)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/conversations/c2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/conversations/zz", "").Code)
}

func TestAPIAutoPilot(t *testing.T) {
	router, _, _ := setup(t)

	var resp struct {
		PropertyID string `json:"propertyId"`
		AutoPilot  bool   `json:"autoPilot"`
	}
	rec := do(router, http.MethodGet, "/api/properties/1/autopilot", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.AutoPilot)

	rec = do(router, http.MethodPost, "/api/properties/1/autopilot/toggle", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.AutoPilot)
	assert.Equal(t, "1", resp.PropertyID)
}

func TestHealthAndMetrics(t *testing.T) {
	router, _, _ := setup(t)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", "").Code)

	do(router, http.MethodGet, "/conversations", "")
	rec := do(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard_http_requests_total")
}
