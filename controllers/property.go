package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/dcode-github/property_dashboard/models"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/utils"
)

var validate = validator.New()

func GetProperties(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := svc.GetProperties(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "Error fetching properties")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched properties",
			Data:    properties,
		})
	}
}

func GetProperty(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, err := svc.GetProperty(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondServiceError(w, r, err, "Error fetching property")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched property",
			Data:    property,
		})
	}
}

func CreateProperty(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", err)
			return
		}
		if err := validate.Struct(property); err != nil {
			utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
			return
		}

		created, err := svc.CreateProperty(r.Context(), property)
		if err != nil {
			respondServiceError(w, r, err, "Failed to create property")
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Property created successfully",
			Data:    created,
		})
	}
}

func UpdateProperty(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid update data", err)
			return
		}
		property.ID = mux.Vars(r)["id"]
		if err := validate.Struct(property); err != nil {
			utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
			return
		}

		updated, err := svc.UpdateProperty(r.Context(), property)
		if err != nil {
			respondServiceError(w, r, err, "Update failed")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Property updated successfully",
			Data:    updated,
		})
	}
}

func DeleteProperty(svc services.DataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteProperty(r.Context(), mux.Vars(r)["id"]); err != nil {
			respondServiceError(w, r, err, "Delete failed")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Property deleted successfully",
		})
	}
}

func respondServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeInvalidID, "Invalid ID", err)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondErrorWithCode(w, r, http.StatusNotFound, utils.ErrCodeNotFound, "Not found", err)
	default:
		utils.RespondErrorWithCode(w, r, http.StatusInternalServerError, utils.ErrCodeInternal, message, err)
	}
}
