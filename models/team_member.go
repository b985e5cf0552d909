package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamRole string

const (
	RoleMechanic       TeamRole = "mechanic"
	RoleElectrician    TeamRole = "electrician"
	RolePainter        TeamRole = "painter"
	RoleServiceAdvisor TeamRole = "service-advisor"
	RoleManager        TeamRole = "manager"
)

type ExpertiseLevel string

const (
	ExpertiseJunior ExpertiseLevel = "junior"
	ExpertiseMid    ExpertiseLevel = "mid"
	ExpertiseSenior ExpertiseLevel = "senior"
)

type TeamMember struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Role           TeamRole       `json:"role"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Active         bool           `json:"active"`
	ExpertiseLevel ExpertiseLevel `json:"expertiseLevel"`

	CertificationExpiry *time.Time `json:"certificationExpiry,omitempty"`
	HiredAt             time.Time  `json:"hiredAt"`
}
