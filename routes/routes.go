package routes

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcode-github/property_dashboard/controllers"
	"github.com/dcode-github/property_dashboard/middleware"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/views"
)

func Routes(router *mux.Router, svc services.DataService, autoPilot *views.AutoPilotStore) {
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics)

	router.HandleFunc("/health", controllers.Health()).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// JSON API
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/properties", controllers.GetProperties(svc)).Methods("GET")
	api.HandleFunc("/properties", controllers.CreateProperty(svc)).Methods("POST")
	api.HandleFunc("/properties/{id}", controllers.GetProperty(svc)).Methods("GET")
	api.HandleFunc("/properties/{id}", controllers.UpdateProperty(svc)).Methods("PUT")
	api.HandleFunc("/properties/{id}", controllers.DeleteProperty(svc)).Methods("DELETE")
	api.HandleFunc("/properties/{id}/conversations", controllers.GetConversationsByProperty(svc)).Methods("GET")
	api.HandleFunc("/properties/{id}/autopilot", controllers.GetAutoPilot(autoPilot)).Methods("GET")
	api.HandleFunc("/properties/{id}/autopilot/toggle", controllers.ToggleAutoPilot(autoPilot)).Methods("POST")

	api.HandleFunc("/conversations", controllers.GetConversations(svc)).Methods("GET")
	api.HandleFunc("/conversations/{id}", controllers.GetConversation(svc)).Methods("GET")

	// Dashboard pages
	router.HandleFunc("/", controllers.PropertyListPage(svc, autoPilot)).Methods("GET")
	router.HandleFunc("/properties", controllers.SaveProperty(svc, autoPilot)).Methods("POST")
	router.HandleFunc("/properties/new", controllers.NewPropertyForm(svc, autoPilot)).Methods("GET")
	router.HandleFunc("/properties/{id}", controllers.SaveProperty(svc, autoPilot)).Methods("POST")
	router.HandleFunc("/properties/{id}/edit", controllers.EditPropertyForm(svc, autoPilot)).Methods("GET")
	router.HandleFunc("/properties/{id}/delete", controllers.ConfirmDeletePage(svc, autoPilot)).Methods("GET")
	router.HandleFunc("/properties/{id}/delete", controllers.DeletePropertyAction(svc, autoPilot)).Methods("POST")
	router.HandleFunc("/properties/{id}/autopilot", controllers.ToggleAutoPilotAction(autoPilot)).Methods("POST")

	router.HandleFunc("/conversations", controllers.ConversationListPage(svc)).Methods("GET")
	router.HandleFunc("/conversations/{propertyId}", controllers.ConversationListPage(svc)).Methods("GET")
	router.HandleFunc("/chat/{id}", controllers.ChatPage(svc)).Methods("GET")
}
