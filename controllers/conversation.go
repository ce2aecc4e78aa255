package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/utils"
)

func GetConversations(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversations, err := svc.GetConversations(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "Error fetching conversations")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched conversations",
			Data:    conversations,
		})
	}
}

func GetConversationsByProperty(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversations, err := svc.GetConversationsByProperty(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondServiceError(w, r, err, "Error fetching conversations")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched property conversations",
			Data:    conversations,
		})
	}
}

func GetConversation(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversation, err := svc.GetConversation(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondServiceError(w, r, err, "Error fetching conversation")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched conversation",
			Data:    conversation,
		})
	}
}
