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

// TeamMemberInput defines the expected JSON structure for creating or
// updating a team member.
type TeamMemberInput struct {
	Name                string                `json:"name" binding:"required"`
	Role                models.TeamRole       `json:"role" binding:"required,oneof=mechanic electrician painter service-advisor manager"`
	Phone               string                `json:"phone" binding:"required"`
	Email               string                `json:"email" binding:"omitempty,email"`
	Active              bool                  `json:"active"`
	ExpertiseLevel      models.ExpertiseLevel `json:"expertiseLevel" binding:"required,oneof=junior mid senior"`
	CertificationExpiry *time.Time            `json:"certificationExpiry"`
	HiredAt             time.Time             `json:"hiredAt" binding:"required"`
}

func (in TeamMemberInput) toModel() models.TeamMember {
	return models.TeamMember{
		Name:                strings.TrimSpace(in.Name),
		Role:                in.Role,
		Phone:               strings.TrimSpace(in.Phone),
		Email:               strings.ToLower(strings.TrimSpace(in.Email)),
		Active:              in.Active,
		ExpertiseLevel:      in.ExpertiseLevel,
		CertificationExpiry: in.CertificationExpiry,
		HiredAt:             in.HiredAt,
	}
}

// CreateTeamMember adds a new member to the team
func CreateTeamMember(c *gin.Context) {
	var input TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	member := Store.CreateTeamMember(input.toModel())
	c.JSON(http.StatusCreated, member)
}

// GetTeamMembers retrieves the whole team, newest first
func GetTeamMembers(c *gin.Context) {
	c.JSON(http.StatusOK, Store.TeamMembers())
}

// GetTeamMember retrieves a specific team member by ID
func GetTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	member, found := Store.FindTeamMember(memberID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember replaces an existing member's fields. A missing id is a
// no-op, not an error.
func UpdateTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var input TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	member, found := Store.UpdateTeamMember(memberID, input.toModel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Team member not found, nothing updated"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember removes a member. Revisions or clients referencing the
// member keep their dangling ids. A missing id is a no-op, not an error.
func DeleteTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	if !Store.DeleteTeamMember(memberID) {
		c.JSON(http.StatusOK, gin.H{"message": "Team member not found, nothing deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
