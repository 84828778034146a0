package controllers

import (
	"errors"
	"net/http"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CustomerInput defines the expected JSON structure for creating or
// replacing a customer. Updates are full-record replaces.
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// GetCustomers retrieves all customers, newest created first
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("created_at DESC, id DESC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	var existing models.Customer
	if err := config.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": customer.ID, "message": "Customer added"})
}

// UpdateCustomer replaces an existing customer record and refreshes its
// update timestamp
func UpdateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Retrieve existing customer
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Check if phone is being changed to another existing customer
	if customer.Phone != input.Phone {
		var existing models.Customer
		if err := config.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address
	customer.Notes = input.Notes

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
}

// DeleteCustomer removes a customer by id
func DeleteCustomer(c *gin.Context) {
	result := config.DB.Delete(&models.Customer{}, "id = ?", c.Param("id"))

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
