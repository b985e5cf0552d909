package models

import (
	"github.com/google/uuid"
)

type RevisionStatus string

const (
	RevisionScheduled  RevisionStatus = "scheduled"
	RevisionInProgress RevisionStatus = "in-progress"
	RevisionCompleted  RevisionStatus = "completed"
)

type RevisionPriority string

const (
	PriorityHigh   RevisionPriority = "high"
	PriorityMedium RevisionPriority = "medium"
	PriorityLow    RevisionPriority = "low"
)

// Revision is a service appointment for a vehicle. ScheduledDate uses the
// "2006-01-02" layout and ScheduledTime "15:04", as assembled by the app's
// forms. AssignedTo is a soft reference to a TeamMember and is never
// validated against the team collection.
type Revision struct {
	ID                 uuid.UUID        `json:"id"`
	ClientName         string           `json:"clientName"`
	ClientPhone        string           `json:"clientPhone"`
	VehicleModel       string           `json:"vehicleModel"`
	LicensePlate       string           `json:"licensePlate"`
	ServiceDescription string           `json:"serviceDescription"`
	ScheduledDate      string           `json:"scheduledDate"`
	ScheduledTime      string           `json:"scheduledTime"`
	Status             RevisionStatus   `json:"status"`
	Priority           RevisionPriority `json:"priority"`
	AssignedTo         *uuid.UUID       `json:"assignedTo,omitempty"`
	Notes              string           `json:"notes"`
	RemindersEnabled   bool             `json:"remindersEnabled"`
}

// ScheduledDateLayout is the date format carried by Revision.ScheduledDate.
const ScheduledDateLayout = "2006-01-02"
