package http

import (
	"net/http"
	"strconv"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

type contractBody struct {
	PropertyID       int32  `json:"property_id"`
	TenantID         int32  `json:"tenant_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MonthlyRentCents int32  `json:"monthly_rent_cents"`
	DepositCents     int32  `json:"deposit_cents"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body contractBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := &domain.Contract{
		PropertyID:       body.PropertyID,
		TenantID:         body.TenantID,
		StartDate:        body.StartDate,
		EndDate:          body.EndDate,
		MonthlyRentCents: body.MonthlyRentCents,
		DepositCents:     body.DepositCents,
	}
	created, err := h.contractSvc.CreateContract(r.Context(), c)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	c, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type terminateBody struct {
	Reason string `json:"reason"`
}

func (h *ContractHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	var body terminateBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.contractSvc.TerminateContract(r.Context(), id, body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	propertyID, err := optionalID(q.Get("property_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property_id")
		return
	}
	tenantID, err := optionalID(q.Get("tenant_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant_id")
		return
	}

	contracts, err := h.contractSvc.ListContracts(r.Context(), propertyID, tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

func optionalID(raw string) (int32, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
