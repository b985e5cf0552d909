package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redcar-backend/models"
	"redcar-backend/utils"
)

// SupplierInput defines the expected JSON structure for creating or updating
// a supplier.
type SupplierInput struct {
	Company       string                  `json:"company" binding:"required"`
	ContactName   string                  `json:"contactName"`
	Phone         string                  `json:"phone" binding:"required"`
	Email         string                  `json:"email" binding:"omitempty,email"`
	Category      models.SupplierCategory `json:"category" binding:"required,oneof=parts tires fluids tools electrical"`
	LeadTimeDays  int                     `json:"leadTimeDays" binding:"min=0"`
	Preferred     bool                    `json:"preferred"`
	Rating        float64                 `json:"rating" binding:"min=0,max=5"`
	LastOrderDate *time.Time              `json:"lastOrderDate"`
}

func (in SupplierInput) toModel() models.Supplier {
	return models.Supplier{
		Company:       strings.TrimSpace(in.Company),
		ContactName:   strings.TrimSpace(in.ContactName),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Category:      in.Category,
		LeadTimeDays:  in.LeadTimeDays,
		Preferred:     in.Preferred,
		Rating:        in.Rating,
		LastOrderDate: in.LastOrderDate,
	}
}

// CreateSupplier adds a new supplier
func CreateSupplier(c *gin.Context) {
	var input SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	supplier := Store.CreateSupplier(input.toModel())
	c.JSON(http.StatusCreated, supplier)
}

// GetSuppliers retrieves all suppliers, newest first
func GetSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, Store.Suppliers())
}

// GetSupplier retrieves a specific supplier by ID
func GetSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	supplier, found := Store.FindSupplier(supplierID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// UpdateSupplier replaces an existing supplier's fields. A missing id is a
// no-op, not an error.
func UpdateSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var input SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	supplier, found := Store.UpdateSupplier(supplierID, input.toModel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Supplier not found, nothing updated"})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier removes a supplier. A missing id is a no-op, not an error.
func DeleteSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	if !Store.DeleteSupplier(supplierID) {
		c.JSON(http.StatusOK, gin.H{"message": "Supplier not found, nothing deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
