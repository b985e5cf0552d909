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

// ClientInput defines the expected JSON structure for creating or updating a
// client. PreferredAdvisor is a soft reference and is never checked against
// the team collection.
type ClientInput struct {
	Name             string            `json:"name" binding:"required"`
	Phone            string            `json:"phone" binding:"required"`
	Email            string            `json:"email" binding:"omitempty,email"`
	Vehicle          string            `json:"vehicle"`
	LicensePlate     string            `json:"licensePlate"`
	LastVisit        *time.Time        `json:"lastVisit"`
	Tier             models.ClientTier `json:"tier" binding:"required,oneof=standard premium vip"`
	Active           bool              `json:"active"`
	Notes            string            `json:"notes"`
	PreferredAdvisor *uuid.UUID        `json:"preferredAdvisor"`
}

func (in ClientInput) toModel() models.Client {
	return models.Client{
		Name:             strings.TrimSpace(in.Name),
		Phone:            strings.TrimSpace(in.Phone),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Vehicle:          strings.TrimSpace(in.Vehicle),
		LicensePlate:     strings.ToUpper(strings.TrimSpace(in.LicensePlate)),
		LastVisit:        in.LastVisit,
		Tier:             in.Tier,
		Active:           in.Active,
		Notes:            in.Notes,
		PreferredAdvisor: in.PreferredAdvisor,
	}
}

// CreateClient adds a new client
func CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := Store.CreateClient(input.toModel())
	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients, newest first
func GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, Store.Clients())
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, found := Store.FindClient(clientID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient replaces an existing client's fields. A missing id is a
// no-op, not an error.
func UpdateClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, found := Store.UpdateClient(clientID, input.toModel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Client not found, nothing updated"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. A missing id is a no-op, not an error.
func DeleteClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if !Store.DeleteClient(clientID) {
		c.JSON(http.StatusOK, gin.H{"message": "Client not found, nothing deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
