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

// RevisionInput defines the expected JSON structure for creating or updating
// a revision. AssignedTo is a soft reference and is never checked against
// the team collection.
type RevisionInput struct {
	ClientName         string                  `json:"clientName" binding:"required"`
	ClientPhone        string                  `json:"clientPhone" binding:"required"`
	VehicleModel       string                  `json:"vehicleModel" binding:"required"`
	LicensePlate       string                  `json:"licensePlate" binding:"required"`
	ServiceDescription string                  `json:"serviceDescription" binding:"required"`
	ScheduledDate      string                  `json:"scheduledDate" binding:"required"`
	ScheduledTime      string                  `json:"scheduledTime" binding:"required"`
	Status             models.RevisionStatus   `json:"status" binding:"required,oneof=scheduled in-progress completed"`
	Priority           models.RevisionPriority `json:"priority" binding:"required,oneof=high medium low"`
	AssignedTo         *uuid.UUID              `json:"assignedTo"`
	Notes              string                  `json:"notes"`
	RemindersEnabled   bool                    `json:"remindersEnabled"`
}

func (in RevisionInput) toModel() models.Revision {
	return models.Revision{
		ClientName:         strings.TrimSpace(in.ClientName),
		ClientPhone:        strings.TrimSpace(in.ClientPhone),
		VehicleModel:       strings.TrimSpace(in.VehicleModel),
		LicensePlate:       strings.ToUpper(strings.TrimSpace(in.LicensePlate)),
		ServiceDescription: strings.TrimSpace(in.ServiceDescription),
		ScheduledDate:      in.ScheduledDate,
		ScheduledTime:      in.ScheduledTime,
		Status:             in.Status,
		Priority:           in.Priority,
		AssignedTo:         in.AssignedTo,
		Notes:              in.Notes,
		RemindersEnabled:   in.RemindersEnabled,
	}
}

func (in RevisionInput) validate(c *gin.Context) bool {
	if !utils.ValidatePhone(in.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return false
	}
	if _, err := time.Parse(models.ScheduledDateLayout, in.ScheduledDate); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduled date, expected YYYY-MM-DD")
		return false
	}
	if _, err := time.Parse("15:04", in.ScheduledTime); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduled time, expected HH:MM")
		return false
	}
	return true
}

// CreateRevision schedules a new service revision
func CreateRevision(c *gin.Context) {
	var input RevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.validate(c) {
		return
	}

	revision := Store.CreateRevision(input.toModel())
	c.JSON(http.StatusCreated, revision)
}

// GetRevisions retrieves all revisions, newest first
func GetRevisions(c *gin.Context) {
	c.JSON(http.StatusOK, Store.Revisions())
}

// GetRevision retrieves a specific revision by ID
func GetRevision(c *gin.Context) {
	revisionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid revision ID format")
		return
	}

	revision, found := Store.FindRevision(revisionID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Revision not found")
		return
	}

	c.JSON(http.StatusOK, revision)
}

// UpdateRevision replaces an existing revision's fields. A missing id is a
// no-op, not an error.
func UpdateRevision(c *gin.Context) {
	revisionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid revision ID format")
		return
	}

	var input RevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.validate(c) {
		return
	}

	revision, found := Store.UpdateRevision(revisionID, input.toModel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Revision not found, nothing updated"})
		return
	}

	c.JSON(http.StatusOK, revision)
}

// DeleteRevision removes a revision. A missing id is a no-op, not an error.
func DeleteRevision(c *gin.Context) {
	revisionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid revision ID format")
		return
	}

	if !Store.DeleteRevision(revisionID) {
		c.JSON(http.StatusOK, gin.H{"message": "Revision not found, nothing deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Revision deleted successfully"})
}
