package models

import (
	"time"

	"github.com/google/uuid"
)

type SupplierCategory string

const (
	SupplierParts      SupplierCategory = "parts"
	SupplierTires      SupplierCategory = "tires"
	SupplierFluids     SupplierCategory = "fluids"
	SupplierTools      SupplierCategory = "tools"
	SupplierElectrical SupplierCategory = "electrical"
)

type Supplier struct {
	ID            uuid.UUID        `json:"id"`
	Company       string           `json:"company"`
	ContactName   string           `json:"contactName"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	Category      SupplierCategory `json:"category"`
	LeadTimeDays  int              `json:"leadTimeDays"`
	Preferred     bool             `json:"preferred"`
	Rating        float64          `json:"rating"` // 0 to 5
	LastOrderDate *time.Time       `json:"lastOrderDate,omitempty"`
}
