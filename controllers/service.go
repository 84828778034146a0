// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a booking
type CreateServiceInput struct {
	CustomerID    uint    `json:"customer_id" binding:"required"`
	ServiceType   string  `json:"service_type" binding:"required"`
	Description   string  `json:"description"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	Status        string  `json:"status"`
	TechnicianID  *uint   `json:"technician_id"`
	TotalAmount   float64 `json:"total_amount" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

// UpdateServiceInput defines the expected JSON structure for updating a booking
type UpdateServiceInput struct {
	CustomerID    *uint    `json:"customer_id"`
	ServiceType   *string  `json:"service_type"`
	Description   *string  `json:"description"`
	ScheduledDate *string  `json:"scheduled_date"`
	Status        *string  `json:"status"`
	TechnicianID  *uint    `json:"technician_id"`
	TotalAmount   *float64 `json:"total_amount"`
	Notes         *string  `json:"notes"`
}

// ServiceRow is a booking joined with the owning customer and the
// assigned technician. The joined fields are null when the reference is
// absent, never an error.
type ServiceRow struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customer_id"`
	ServiceType   string    `json:"service_type"`
	Description   string    `json:"description"`
	ScheduledDate string    `json:"scheduled_date"`
	Status        string    `json:"status"`
	TechnicianID  *uint     `json:"technician_id"`
	TotalAmount   float64   `json:"total_amount"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`

	CustomerName   *string `json:"customer_name"`
	CustomerPhone  *string `json:"customer_phone"`
	TechnicianName *string `json:"technician_name"`
}

// HistoryRow is an audit trail entry with the performer's name joined.
type HistoryRow struct {
	ID            uint      `json:"id"`
	ServiceID     uint      `json:"service_id"`
	Action        string    `json:"action"`
	PerformedBy   *uint     `json:"performed_by"`
	PerformerName *string   `json:"performer_name"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetServices retrieves every booking with customer and technician
// details, most recently scheduled first. An optional limit query
// parameter caps the result for the dashboard.
func GetServices(c *gin.Context) {
	query := config.DB.Table("services s").
		Select(`s.id, s.customer_id, s.service_type, s.description, s.scheduled_date,
			s.status, s.technician_id, s.total_amount, s.notes, s.created_at,
			c.name AS customer_name, c.phone AS customer_phone,
			u.full_name AS technician_name`).
		Joins("LEFT JOIN customers c ON s.customer_id = c.id").
		Joins("LEFT JOIN users u ON s.technician_id = u.id").
		Order("s.scheduled_date DESC, s.id DESC")

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query = query.Limit(limit)
	}

	rows := []ServiceRow{}
	if err := query.Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateService creates a new booking. Status defaults to pending.
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidServiceType(input.ServiceType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type")
		return
	}

	if input.Status == "" {
		input.Status = models.StatusPending
	}
	if !utils.ValidServiceStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service status")
		return
	}

	// The booking must reference an existing customer
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		CustomerID:    input.CustomerID,
		ServiceType:   input.ServiceType,
		Description:   input.Description,
		ScheduledDate: input.ScheduledDate,
		Status:        input.Status,
		TechnicianID:  input.TechnicianID,
		TotalAmount:   input.TotalAmount,
		Notes:         input.Notes,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	if service.TechnicianID != nil {
		appendHistory(c, service.ID, models.ActionAssigned)
	}

	c.JSON(http.StatusCreated, gin.H{"id": service.ID, "message": "Service added"})
}

// UpdateService updates an existing booking. Status transitions and
// technician assignment are recorded in the audit trail.
func UpdateService(c *gin.Context) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	previousStatus := service.Status
	previousTechnician := service.TechnicianID

	// Update fields if provided
	if input.CustomerID != nil {
		service.CustomerID = *input.CustomerID
	}
	if input.ServiceType != nil {
		if !utils.ValidServiceType(*input.ServiceType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type")
			return
		}
		service.ServiceType = *input.ServiceType
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.ScheduledDate != nil {
		service.ScheduledDate = *input.ScheduledDate
	}
	if input.Status != nil {
		if !utils.ValidServiceStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service status")
			return
		}
		service.Status = *input.Status
	}
	if input.TechnicianID != nil {
		service.TechnicianID = input.TechnicianID
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Total amount must not be negative")
			return
		}
		service.TotalAmount = *input.TotalAmount
	}
	if input.Notes != nil {
		service.Notes = *input.Notes
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	if service.TechnicianID != nil &&
		(previousTechnician == nil || *previousTechnician != *service.TechnicianID) {
		appendHistory(c, service.ID, models.ActionAssigned)
	}
	if service.Status != previousStatus {
		if action, ok := statusAction(service.Status); ok {
			appendHistory(c, service.ID, action)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// DeleteService removes a booking together with its audit trail
func DeleteService(c *gin.Context) {
	id := c.Param("id")

	var affected int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ServiceHistory{}, "service_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Service{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if affected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// GetServiceHistory returns the audit trail of a booking, oldest first.
func GetServiceHistory(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	rows := []HistoryRow{}
	err := config.DB.Table("service_history h").
		Select(`h.id, h.service_id, h.action, h.performed_by, h.notes, h.created_at,
			u.full_name AS performer_name`).
		Joins("LEFT JOIN users u ON h.performed_by = u.id").
		Where("h.service_id = ?", service.ID).
		Order("h.created_at ASC, h.id ASC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// statusAction maps a status transition target to its audit action.
// Moving back to pending is not an auditable action.
func statusAction(status string) (string, bool) {
	switch status {
	case models.StatusInProgress:
		return models.ActionStarted, true
	case models.StatusCompleted:
		return models.ActionCompleted, true
	case models.StatusCancelled:
		return models.ActionCancelled, true
	}
	return "", false
}

// appendHistory writes an audit entry attributed to the session user.
// A failed append is logged by gorm but never fails the request.
func appendHistory(c *gin.Context, serviceID uint, action string) {
	entry := models.ServiceHistory{
		ServiceID: serviceID,
		Action:    action,
	}
	if userID, ok := utils.CurrentUserID(c); ok {
		entry.PerformedBy = &userID
	}
	config.DB.Create(&entry)
}
