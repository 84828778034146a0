package controllers_test

import (
	"net/http"
	"testing"

	"aircond-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceRow struct {
	ID             uint    `json:"id"`
	CustomerID     uint    `json:"customer_id"`
	ServiceType    string  `json:"service_type"`
	ScheduledDate  string  `json:"scheduled_date"`
	Status         string  `json:"status"`
	TechnicianID   *uint   `json:"technician_id"`
	TotalAmount    float64 `json:"total_amount"`
	CustomerName   *string `json:"customer_name"`
	CustomerPhone  *string `json:"customer_phone"`
	TechnicianName *string `json:"technician_name"`
}

type historyRow struct {
	Action        string  `json:"action"`
	PerformedBy   *uint   `json:"performed_by"`
	PerformerName *string `json:"performer_name"`
}

func TestCreateServiceDefaultsToPending(t *testing.T) {
	r, store := setupRouter(t)
	user := createUser(t, "sarah", "secret123")
	cookie := authCookie(t, store, user.ID)
	customer := createCustomer(t, "Ahmad", "012-3456789")

	w := doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id":    customer.ID,
		"service_type":   "cleaning",
		"scheduled_date": "2026-09-01",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/services", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []serviceRow
	decodeJSON(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "pending", rows[0].Status)
	require.NotNil(t, rows[0].CustomerName)
	assert.Equal(t, "Ahmad", *rows[0].CustomerName)
	require.NotNil(t, rows[0].CustomerPhone)
	assert.Equal(t, "012-3456789", *rows[0].CustomerPhone)
	assert.Nil(t, rows[0].TechnicianName, "unassigned technician must join to null")
}

func TestCreateServiceValidation(t *testing.T) {
	r, store := setupRouter(t)
	user := createUser(t, "sarah", "secret123")
	cookie := authCookie(t, store, user.ID)
	customer := createCustomer(t, "Ahmad", "012-3456789")

	// Unknown service type
	w := doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": customer.ID, "service_type": "plumbing", "scheduled_date": "2026-09-01",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown status
	w = doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": customer.ID, "service_type": "repair",
		"scheduled_date": "2026-09-01", "status": "maybe",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative amount
	w = doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": customer.ID, "service_type": "repair",
		"scheduled_date": "2026-09-01", "total_amount": -10,
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown customer
	w = doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": 999, "service_type": "repair", "scheduled_date": "2026-09-01",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServicesOrderAndLimit(t *testing.T) {
	r, store := setupRouter(t)
	user := createUser(t, "sarah", "secret123")
	cookie := authCookie(t, store, user.ID)
	customer := createCustomer(t, "Ahmad", "012-3456789")

	for _, date := range []string{"2026-09-01", "2026-09-15", "2026-09-08"} {
		w := doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
			"customer_id": customer.ID, "service_type": "cleaning", "scheduled_date": date,
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/services", nil, cookie)
	var rows []serviceRow
	decodeJSON(t, w, &rows)
	require.Len(t, rows, 3)
	assert.Equal(t, "2026-09-15", rows[0].ScheduledDate)
	assert.Equal(t, "2026-09-08", rows[1].ScheduledDate)
	assert.Equal(t, "2026-09-01", rows[2].ScheduledDate)

	w = doRequest(t, r, http.MethodGet, "/api/services?limit=2", nil, cookie)
	rows = nil
	decodeJSON(t, w, &rows)
	assert.Len(t, rows, 2)
}

func TestServiceLifecycleWritesHistory(t *testing.T) {
	r, store := setupRouter(t)
	admin := createUser(t, "admin", "admin123")
	technician := createUser(t, "tech", "secret123")
	cookie := authCookie(t, store, admin.ID)
	customer := createCustomer(t, "Ahmad", "012-3456789")

	w := doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": customer.ID, "service_type": "repair", "scheduled_date": "2026-09-01",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	// Assign, start, complete
	for _, body := range []map[string]any{
		{"technician_id": technician.ID},
		{"status": "in_progress"},
		{"status": "completed", "total_amount": 250.0},
	} {
		w = doRequest(t, r, http.MethodPut, "/api/services/1", body, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/services/1/history", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var trail []historyRow
	decodeJSON(t, w, &trail)
	require.Len(t, trail, 3)
	assert.Equal(t, "assigned", trail[0].Action)
	assert.Equal(t, "started", trail[1].Action)
	assert.Equal(t, "completed", trail[2].Action)
	for _, entry := range trail {
		require.NotNil(t, entry.PerformedBy)
		assert.Equal(t, admin.ID, *entry.PerformedBy)
	}

	// Technician name now joins into the listing
	w = doRequest(t, r, http.MethodGet, "/api/services", nil, cookie)
	var rows []serviceRow
	decodeJSON(t, w, &rows)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].TechnicianName)
	assert.Equal(t, technician.FullName, *rows[0].TechnicianName)
	assert.Equal(t, 250.0, rows[0].TotalAmount)
}

func TestUpdateMissingServiceReturns404(t *testing.T) {
	r, store := setupRouter(t)
	user := createUser(t, "sarah", "secret123")
	cookie := authCookie(t, store, user.ID)

	w := doRequest(t, r, http.MethodPut, "/api/services/999", map[string]any{
		"status": "completed",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteServiceRemovesHistory(t *testing.T) {
	r, store := setupRouter(t)
	user := createUser(t, "sarah", "secret123")
	cookie := authCookie(t, store, user.ID)
	customer := createCustomer(t, "Ahmad", "012-3456789")

	w := doRequest(t, r, http.MethodPost, "/api/services", map[string]any{
		"customer_id": customer.ID, "service_type": "installation", "scheduled_date": "2026-09-01",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, r, http.MethodPut, "/api/services/1", map[string]any{"status": "cancelled"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/services/1", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/services/1", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	configDB(t).Model(&models.ServiceHistory{}).Where("service_id = ?", 1).Count(&count)
	assert.Zero(t, count, "deleting a booking must drop its audit trail")
}
