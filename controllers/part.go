package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redcar-backend/models"
	"redcar-backend/utils"
)

// PartInput defines the expected JSON structure for creating or updating a
// part. Updates replace every field of the stored record, so the same shape
// serves both; identity and updatedAt are owned by the store.
type PartInput struct {
	Name     string              `json:"name" binding:"required"`
	Code     string              `json:"code" binding:"required"`
	Quantity int                 `json:"quantity" binding:"min=0"`
	MinStock int                 `json:"minStock" binding:"min=0"`
	Location string              `json:"location"`
	Supplier string              `json:"supplier"`
	Category models.PartCategory `json:"category" binding:"required"`
	UnitCost float64             `json:"unitCost" binding:"min=0"`
}

func (in PartInput) toModel() models.Part {
	return models.Part{
		Name:     strings.TrimSpace(in.Name),
		Code:     strings.ToUpper(strings.TrimSpace(in.Code)),
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Location: strings.TrimSpace(in.Location),
		Supplier: strings.TrimSpace(in.Supplier),
		Category: in.Category,
		UnitCost: in.UnitCost,
	}
}

// CreatePart adds a new part to the inventory
func CreatePart(c *gin.Context) {
	var input PartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part := Store.CreatePart(input.toModel())
	c.JSON(http.StatusCreated, part)
}

// GetParts retrieves the full inventory, newest first
func GetParts(c *gin.Context) {
	c.JSON(http.StatusOK, Store.Parts())
}

// GetPart retrieves a specific part by ID
func GetPart(c *gin.Context) {
	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	part, found := Store.FindPart(partID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Part not found")
		return
	}

	c.JSON(http.StatusOK, part)
}

// UpdatePart replaces an existing part's fields. A missing id is a no-op,
// not an error.
func UpdatePart(c *gin.Context) {
	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	var input PartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	part, found := Store.UpdatePart(partID, input.toModel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Part not found, nothing updated"})
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart removes a part. A missing id is a no-op, not an error.
func DeletePart(c *gin.Context) {
	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	if !Store.DeletePart(partID) {
		c.JSON(http.StatusOK, gin.H{"message": "Part not found, nothing deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}
