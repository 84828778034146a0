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

// CreateInventoryInput defines the expected JSON structure for creating an item
type CreateInventoryInput struct {
	Name       string  `json:"name" binding:"required"`
	PartNumber string  `json:"part_number"`
	Category   string  `json:"category"`
	Stock      int     `json:"stock" binding:"gte=0"`
	UnitPrice  float64 `json:"unit_price" binding:"gte=0"`
	Supplier   string  `json:"supplier"`
	Notes      string  `json:"notes"`
}

// UpdateInventoryInput defines the expected JSON structure for updating an item
type UpdateInventoryInput struct {
	Name       *string  `json:"name"`
	PartNumber *string  `json:"part_number"`
	Category   *string  `json:"category"`
	Stock      *int     `json:"stock"`
	UnitPrice  *float64 `json:"unit_price"`
	Supplier   *string  `json:"supplier"`
	Notes      *string  `json:"notes"`
}

// GetInventory retrieves all items ordered by name
func GetInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Order("name").Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateInventoryItem creates a new item; numeric fields default to 0
func CreateInventoryItem(c *gin.Context) {
	var input CreateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.InventoryItem{
		Name:       input.Name,
		PartNumber: input.PartNumber,
		Category:   input.Category,
		Stock:      input.Stock,
		UnitPrice:  input.UnitPrice,
		Supplier:   input.Supplier,
		Notes:      input.Notes,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "message": "Inventory item added"})
}

// UpdateInventoryItem updates an existing item
func UpdateInventoryItem(c *gin.Context) {
	var input UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.PartNumber != nil {
		item.PartNumber = *input.PartNumber
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Stock must not be negative")
			return
		}
		item.Stock = *input.Stock
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Unit price must not be negative")
			return
		}
		item.UnitPrice = *input.UnitPrice
	}
	if input.Supplier != nil {
		item.Supplier = *input.Supplier
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item updated"})
}

// DeleteInventoryItem removes an item by id
func DeleteInventoryItem(c *gin.Context) {
	result := config.DB.Delete(&models.InventoryItem{}, "id = ?", c.Param("id"))

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
