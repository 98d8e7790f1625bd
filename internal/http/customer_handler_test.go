package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/domain/mocks"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

func setupCustomerHandler(t *testing.T) (*mocks.MockCustomerService, *CustomerHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockCustomerService(ctrl)
	return service, NewCustomerHandler(service, logger.NewTestLogger(t))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCustomerHandler_HandleCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(&domain.Customer{ID: "cust-1", Slug: "abcd1234", Email: "jane@example.com"}, nil)

		rec := postJSON(t, handler.handleCreate, "/api/customers.create", map[string]interface{}{
			"tenant_id":  "tenant-1",
			"email":      "jane@example.com",
			"first_name": "Jane",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]*domain.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "cust-1", resp["customer"].ID)
	})

	t.Run("email conflict maps to 409", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrEmailConflict{Email: "jane@example.com"})

		rec := postJSON(t, handler.handleCreate, "/api/customers.create", map[string]interface{}{
			"tenant_id": "tenant-1",
			"email":     "jane@example.com",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("email is required"))

		rec := postJSON(t, handler.handleCreate, "/api/customers.create", map[string]interface{}{
			"tenant_id": "tenant-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated maps to 401", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrUnauthorized{})

		rec := postJSON(t, handler.handleCreate, "/api/customers.create", map[string]interface{}{
			"tenant_id": "tenant-1",
			"email":     "jane@example.com",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		_, handler := setupCustomerHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/customers.create", nil)
		rec := httptest.NewRecorder()
		handler.handleCreate(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCustomerHandler_HandleGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			GetCustomer(gomock.Any(), "tenant-1", "cust-1").
			Return(&domain.Customer{ID: "cust-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/customers.get?tenant_id=tenant-1&id=cust-1", nil)
		rec := httptest.NewRecorder()
		handler.handleGet(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			GetCustomer(gomock.Any(), "tenant-1", "missing").
			Return(nil, &domain.ErrCustomerNotFound{Message: "customer not found"})

		req := httptest.NewRequest(http.MethodGet, "/api/customers.get?tenant_id=tenant-1&id=missing", nil)
		rec := httptest.NewRecorder()
		handler.handleGet(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		_, handler := setupCustomerHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/customers.get?tenant_id=tenant-1", nil)
		rec := httptest.NewRecorder()
		handler.handleGet(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_HandleList(t *testing.T) {
	t.Run("success with filters", func(t *testing.T) {
		service, handler := setupCustomerHandler(t)

		service.EXPECT().
			ListCustomers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, params *domain.CustomerListParams) (*domain.CustomerListResponse, error) {
				assert.Equal(t, "tenant-1", params.TenantID)
				assert.Equal(t, "acme", params.Search)
				return &domain.CustomerListResponse{
					Customers:  []*domain.Customer{},
					Pagination: domain.NewPagination(1, 20, 0),
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/customers.list?tenant_id=tenant-1&search=acme", nil)
		rec := httptest.NewRecorder()
		handler.handleList(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing tenant id", func(t *testing.T) {
		_, handler := setupCustomerHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/customers.list", nil)
		rec := httptest.NewRecorder()
		handler.handleList(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_HandleBulkCreate(t *testing.T) {
	service, handler := setupCustomerHandler(t)

	service.EXPECT().
		BulkCreateCustomers(gomock.Any(), gomock.Any()).
		Return(&domain.BulkCustomerResult{
			Total:     2,
			Succeeded: 1,
			Failed:    1,
			Results: []domain.BulkCustomerItemResult{
				{Index: 0, Success: true, ID: "cust-1"},
				{Index: 1, Error: "email is required"},
			},
		}, nil)

	rec := postJSON(t, handler.handleBulkCreate, "/api/customers.bulkCreate", map[string]interface{}{
		"tenant_id": "tenant-1",
		"customers": []map[string]interface{}{
			{"email": "a@example.com"},
			{},
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.BulkCustomerResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}

func TestCustomerHandler_HandleDelete(t *testing.T) {
	service, handler := setupCustomerHandler(t)

	service.EXPECT().
		DeleteCustomer(gomock.Any(), "tenant-1", "cust-1").
		Return(nil)

	rec := postJSON(t, handler.handleDelete, "/api/customers.delete", map[string]string{
		"tenant_id": "tenant-1",
		"id":        "cust-1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
