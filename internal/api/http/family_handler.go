package http

import (
	"net/http"

	"propertypulse-backend/internal/service"
)

type FamilyHandler struct {
	familySvc service.FamilyService
}

func NewFamilyHandler(familySvc service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familySvc: familySvc}
}

func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid family id")
		return
	}

	f, err := h.familySvc.GetFamily(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	families, err := h.familySvc.ListFamilies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, families)
}

type familyPreferencesBody struct {
	Size               *int32  `json:"size"`
	PreferredLocation  *string `json:"preferred_location"`
	PreferredRentCents *int32  `json:"preferred_rent_cents"`
}

func (h *FamilyHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid family id")
		return
	}

	var body familyPreferencesBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.familySvc.UpdatePreferences(r.Context(), id, body.Size, body.PreferredLocation, body.PreferredRentCents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
