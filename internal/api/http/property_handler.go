package http

import (
	"net/http"
	"strconv"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"
)

type PropertyHandler struct {
	propSvc service.PropertyService
}

func NewPropertyHandler(propSvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propSvc: propSvc}
}

type propertyBody struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Type      string `json:"type"`
	Bedrooms  int32  `json:"bedrooms"`
	Bathrooms int32  `json:"bathrooms"`
	RentCents int32  `json:"rent_cents"`
	Status    string `json:"status"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var body propertyBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := &domain.Property{
		OwnerID:   claims.UserID,
		Name:      body.Name,
		Address:   body.Address,
		City:      body.City,
		Type:      body.Type,
		Bedrooms:  body.Bedrooms,
		Bathrooms: body.Bathrooms,
		RentCents: body.RentCents,
		Status:    domain.PropertyStatus(body.Status),
	}
	if err := h.propSvc.AddProperty(r.Context(), p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	p, err := h.propSvc.GetProperty(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var body propertyBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := &domain.Property{
		ID:        id,
		Name:      body.Name,
		Address:   body.Address,
		City:      body.City,
		Type:      body.Type,
		Bedrooms:  body.Bedrooms,
		Bathrooms: body.Bathrooms,
		RentCents: body.RentCents,
		Status:    domain.PropertyStatus(body.Status),
	}
	if err := h.propSvc.UpdateProperty(r.Context(), claims.UserID, claims.Role, p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	if err := h.propSvc.DeleteProperty(r.Context(), claims.UserID, claims.Role, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var ownerID int32
	if raw := q.Get("owner_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner_id")
			return
		}
		ownerID = int32(id)
	}

	props, err := h.propSvc.ListProperties(r.Context(), ownerID, q.Get("city"), domain.PropertyStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, props)
}
