package http

import (
	"net/http"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/security"
	"propertypulse-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers bundles the per-resource handlers the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	JoinRequest *JoinRequestHandler
	Property    *PropertyHandler
	Contract    *ContractHandler
	Event       *EventHandler
	Family      *FamilyHandler
	User        *UserHandler
}

func NewHandlers(
	authSvc service.AuthService,
	adminSvc service.AdminService,
	propSvc service.PropertyService,
	contractSvc service.ContractService,
	eventSvc service.EventService,
	familySvc service.FamilyService,
	userSvc service.UserService,
) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(authSvc),
		JoinRequest: NewJoinRequestHandler(adminSvc, authSvc),
		Property:    NewPropertyHandler(propSvc),
		Contract:    NewContractHandler(contractSvc),
		Event:       NewEventHandler(eventSvc),
		Family:      NewFamilyHandler(familySvc),
		User:        NewUserHandler(userSvc, adminSvc),
	}
}

// NewRouter wires all routes under /api/v1. Join-request review is gated to
// ADMIN and PROPERTY_MANAGER; submission and login are public.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	m := NewMiddleware(tokens)

	root := mux.NewRouter()
	api := root.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/join-requests", h.JoinRequest.Submit).Methods(http.MethodPost)
	api.HandleFunc("/join-request", h.JoinRequest.Submit).Methods(http.MethodPost)

	// Everything below requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(m.Authenticate)

	reviewers := authed.NewRoute().Subrouter()
	reviewers.Use(m.RequireRoles(domain.RoleAdmin, domain.RolePropertyManager))
	reviewers.HandleFunc("/join-requests", h.JoinRequest.List).Methods(http.MethodGet)
	reviewers.HandleFunc("/join-requests/{id:[0-9]+}", h.JoinRequest.Get).Methods(http.MethodGet)
	reviewers.HandleFunc("/join-requests/{id:[0-9]+}", h.JoinRequest.Review).Methods(http.MethodPatch)
	// Singular aliases kept for clients built against the original paths.
	reviewers.HandleFunc("/join-request/{id:[0-9]+}", h.JoinRequest.Get).Methods(http.MethodGet)
	reviewers.HandleFunc("/join-request/{id:[0-9]+}", h.JoinRequest.Review).Methods(http.MethodPatch)
	reviewers.HandleFunc("/users", h.User.List).Methods(http.MethodGet)

	authed.HandleFunc("/me", h.User.Me).Methods(http.MethodGet)
	authed.HandleFunc("/me", h.User.UpdateMe).Methods(http.MethodPut)

	owners := authed.NewRoute().Subrouter()
	owners.Use(m.RequireRoles(domain.RoleAdmin, domain.RolePropertyManager, domain.RoleOwner))
	owners.HandleFunc("/properties", h.Property.Create).Methods(http.MethodPost)
	owners.HandleFunc("/properties/{id:[0-9]+}", h.Property.Update).Methods(http.MethodPut)
	owners.HandleFunc("/properties/{id:[0-9]+}", h.Property.Delete).Methods(http.MethodDelete)
	owners.HandleFunc("/contracts", h.Contract.Create).Methods(http.MethodPost)
	owners.HandleFunc("/contracts/{id:[0-9]+}/terminate", h.Contract.Terminate).Methods(http.MethodPost)
	owners.HandleFunc("/events", h.Event.Create).Methods(http.MethodPost)
	owners.HandleFunc("/events/{id:[0-9]+}/complete", h.Event.Complete).Methods(http.MethodPost)

	authed.HandleFunc("/properties", h.Property.List).Methods(http.MethodGet)
	authed.HandleFunc("/properties/{id:[0-9]+}", h.Property.Get).Methods(http.MethodGet)
	authed.HandleFunc("/contracts", h.Contract.List).Methods(http.MethodGet)
	authed.HandleFunc("/contracts/{id:[0-9]+}", h.Contract.Get).Methods(http.MethodGet)
	authed.HandleFunc("/events", h.Event.List).Methods(http.MethodGet)
	authed.HandleFunc("/events/{id:[0-9]+}", h.Event.Get).Methods(http.MethodGet)
	authed.HandleFunc("/families", h.Family.List).Methods(http.MethodGet)
	authed.HandleFunc("/families/{id:[0-9]+}", h.Family.Get).Methods(http.MethodGet)
	authed.HandleFunc("/families/{id:[0-9]+}", h.Family.UpdatePreferences).Methods(http.MethodPut)

	return root
}
