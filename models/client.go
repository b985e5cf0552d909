package models

import (
	"time"

	"github.com/google/uuid"
)

type ClientTier string

const (
	TierStandard ClientTier = "standard"
	TierPremium  ClientTier = "premium"
	TierVIP      ClientTier = "vip"
)

// Client is a workshop customer. PreferredAdvisor is a soft reference to a
// TeamMember id; deleting the member leaves it dangling.
type Client struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Vehicle      string     `json:"vehicle"`
	LicensePlate string     `json:"licensePlate"`
	LastVisit    *time.Time `json:"lastVisit,omitempty"`
	Tier         ClientTier `json:"tier"`
	Active       bool       `json:"active"`
	Notes        string     `json:"notes"`

	PreferredAdvisor *uuid.UUID `json:"preferredAdvisor,omitempty"`
}
