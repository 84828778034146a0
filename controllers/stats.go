// controllers/stats.go
package controllers

import (
	"net/http"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
)

// Items with fewer units on hand count as low stock on the dashboard.
const lowStockThreshold = 5

// GetStats returns the dashboard counters. Each one is an independent
// aggregate query computed fresh per request; concurrent requests need
// not agree.
func GetStats(c *gin.Context) {
	var customers, services, pending, lowStock int64
	var revenue float64

	if err := config.DB.Model(&models.Customer{}).Count(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	config.DB.Model(&models.Service{}).Count(&services)
	config.DB.Model(&models.Service{}).Where("status = ?", models.StatusPending).Count(&pending)
	config.DB.Model(&models.Service{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)
	config.DB.Model(&models.InventoryItem{}).Where("stock < ?", lowStockThreshold).Count(&lowStock)

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"services":  services,
		"pending":   pending,
		"revenue":   revenue,
		"low_stock": lowStock,
	})
}
