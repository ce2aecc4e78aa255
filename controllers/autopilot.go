package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_dashboard/utils"
	"github.com/dcode-github/property_dashboard/views"
)

type AutoPilotResponse struct {
	PropertyID string `json:"propertyId"`
	AutoPilot  bool   `json:"autoPilot"`
}

func GetAutoPilot(store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		utils.RespondWithJSON(w, http.StatusOK, AutoPilotResponse{PropertyID: id, AutoPilot: store.Get(id)})
	}
}

func ToggleAutoPilot(store *views.AutoPilotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		on := store.Toggle(id)
		utils.Logger.Infof("Auto-pilot for property %s set to %t", id, on)
		utils.RespondWithJSON(w, http.StatusOK, AutoPilotResponse{PropertyID: id, AutoPilot: on})
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
