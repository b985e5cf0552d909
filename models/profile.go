package models

// WorkshopProfile holds the workshop settings edited on the profile screen.
type WorkshopProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	RevisionReminders     bool `json:"revisionReminders"`
	WhatsAppNotifications bool `json:"whatsAppNotifications"`
	SMSNotifications      bool `json:"smsNotifications"`
}

// DefaultWorkshopProfile is used until the profile is first saved.
func DefaultWorkshopProfile() WorkshopProfile {
	return WorkshopProfile{
		Name:              "RedCar Oficina",
		RevisionReminders: true,
		SMSNotifications:  true,
	}
}
