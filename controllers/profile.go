package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"redcar-backend/utils"
)

type UpdateProfileInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type UpdateNotificationSettingsInput struct {
	RevisionReminders     bool `json:"revisionReminders"`
	WhatsAppNotifications bool `json:"whatsAppNotifications"`
	SMSNotifications      bool `json:"smsNotifications"`
}

// GetProfile returns the workshop profile and notification settings.
func GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, Store.Profile())
}

// UpdateProfile replaces the workshop contact fields, keeping the current
// notification toggles.
func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	profile := Store.Profile()
	profile.Name = strings.TrimSpace(input.Name)
	profile.Address = strings.TrimSpace(input.Address)
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.Email = strings.ToLower(strings.TrimSpace(input.Email))
	Store.SaveProfile(profile)

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UpdateNotificationSettings replaces the notification toggles, keeping the
// current contact fields.
func UpdateNotificationSettings(c *gin.Context) {
	var input UpdateNotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	profile := Store.Profile()
	profile.RevisionReminders = input.RevisionReminders
	profile.WhatsAppNotifications = input.WhatsAppNotifications
	profile.SMSNotifications = input.SMSNotifications
	Store.SaveProfile(profile)

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
