package http

import (
	"net/http"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type eventBody struct {
	PropertyID  int32  `json:"property_id"`
	ContractID  *int32 `json:"contract_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Notes       string `json:"notes"`
	ScheduledOn string `json:"scheduled_on"` // RFC 3339
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var body eventBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scheduledOn, err := time.Parse(time.RFC3339, body.ScheduledOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "scheduled_on must be an RFC 3339 timestamp")
		return
	}

	e := &domain.Event{
		PropertyID:  body.PropertyID,
		ContractID:  body.ContractID,
		Type:        domain.EventType(body.Type),
		Title:       body.Title,
		Notes:       body.Notes,
		ScheduledOn: scheduledOn,
		CreatedBy:   claims.UserID,
	}
	if err := h.eventSvc.CreateEvent(r.Context(), e); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	e, err := h.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EventHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	e, err := h.eventSvc.CompleteEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyID, err := optionalID(r.URL.Query().Get("property_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property_id")
		return
	}

	events, err := h.eventSvc.ListEvents(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
