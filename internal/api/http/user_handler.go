package http

import (
	"net/http"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"
)

type UserHandler struct {
	userSvc  service.UserService
	adminSvc service.AdminService
}

func NewUserHandler(userSvc service.UserService, adminSvc service.AdminService) *UserHandler {
	return &UserHandler{userSvc: userSvc, adminSvc: adminSvc}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	u, err := h.userSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type updateProfileBody struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var body updateProfileBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userSvc.UpdateProfile(r.Context(), claims.UserID, body.Name, body.PhoneNumber); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("role"))
	users, err := h.adminSvc.ListUsers(r.Context(), role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
