package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type CustomerHandler struct {
	service domain.CustomerService
	logger  logger.Logger
}

func NewCustomerHandler(service domain.CustomerService, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(mux *http.ServeMux) {
	// RPC-style endpoints with dot notation
	mux.HandleFunc("/api/customers.list", h.handleList)
	mux.HandleFunc("/api/customers.get", h.handleGet)
	mux.HandleFunc("/api/customers.create", h.handleCreate)
	mux.HandleFunc("/api/customers.update", h.handleUpdate)
	mux.HandleFunc("/api/customers.delete", h.handleDelete)
	mux.HandleFunc("/api/customers.bulkCreate", h.handleBulkCreate)
	mux.HandleFunc("/api/customers.bulkUpdate", h.handleBulkUpdate)
	mux.HandleFunc("/api/customers.bulkDelete", h.handleBulkDelete)
	mux.HandleFunc("/api/customers.stats", h.handleStats)
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := &domain.CustomerListParams{}
	if err := params.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListCustomers(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, "Failed to list customers")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CustomerHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing customer ID", http.StatusBadRequest)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), tenantID, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get customer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to create customer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to update customer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TenantID string `json:"tenant_id"`
		ID       string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TenantID == "" || req.ID == "" {
		WriteJSONError(w, "tenant_id and id are required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), req.TenantID, req.ID); err != nil {
		writeServiceError(w, err, "Failed to delete customer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CustomerHandler) handleBulkCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.BulkCreateCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BulkCreateCustomers(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to bulk create customers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CustomerHandler) handleBulkUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.BulkUpdateCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BulkUpdateCustomers(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to bulk update customers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CustomerHandler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.BulkDeleteCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BulkDeleteCustomers(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to bulk delete customers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CustomerHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}

	stats, err := h.service.GetCustomerStats(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err, "Failed to get customer stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}
