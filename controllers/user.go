package controllers

import (
	"net/http"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists staff accounts for the technician picker. The password
// hash never leaves the model.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("full_name").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, users)
}
