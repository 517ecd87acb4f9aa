package http

import (
	"net/http"
	"strconv"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"

	"github.com/gorilla/mux"
)

// JoinRequestHandler serves the public submission endpoint and the
// admin-side review endpoints.
type JoinRequestHandler struct {
	adminSvc service.AdminService
	authSvc  service.AuthService
}

func NewJoinRequestHandler(adminSvc service.AdminService, authSvc service.AuthService) *JoinRequestHandler {
	return &JoinRequestHandler{adminSvc: adminSvc, authSvc: authSvc}
}

type submitJoinRequestBody struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Message    string `json:"message"`
	FamilySize *int32 `json:"family_size"`
}

func (h *JoinRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitJoinRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.authSvc.SubmitJoinRequest(r.Context(), body.Name, body.Email, domain.Role(body.Role), body.Message, body.FamilySize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *JoinRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid join request id")
		return
	}

	req, err := h.adminSvc.GetJoinRequest(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *JoinRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.JoinRequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.adminSvc.ListJoinRequests(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

type reviewJoinRequestBody struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type reviewJoinRequestResponse struct {
	Success           bool                `json:"success"`
	Message           string              `json:"message"`
	JoinRequest       *domain.JoinRequest `json:"joinRequest"`
	TemporaryPassword string              `json:"temporaryPassword,omitempty"`
}

// Review handles PATCH /join-requests/{id}. The decision body must carry
// status APPROVED or REJECTED; the reviewer comes from the token claims.
func (h *JoinRequestHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid join request id")
		return
	}

	var body reviewJoinRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	result, err := h.adminSvc.ReviewJoinRequest(r.Context(), id, body.Status, claims.UserID, body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	message := "Join request rejected"
	if result.JoinRequest.Status == domain.JoinRequestStatusApproved {
		message = "Join request approved and account provisioned"
	}
	writeJSON(w, http.StatusOK, reviewJoinRequestResponse{
		Success:           true,
		Message:           message,
		JoinRequest:       result.JoinRequest,
		TemporaryPassword: result.TemporaryPassword,
	})
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
