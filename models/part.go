package models

import (
	"time"

	"github.com/google/uuid"
)

type PartCategory string

const (
	PartCategoryEngine     PartCategory = "engine"
	PartCategoryBrakes     PartCategory = "brakes"
	PartCategorySuspension PartCategory = "suspension"
	PartCategoryElectrical PartCategory = "electrical"
	PartCategoryBodywork   PartCategory = "bodywork"
	PartCategoryFluids     PartCategory = "fluids"
	PartCategoryGeneral    PartCategory = "general"
)

// Part is one inventory item. UpdatedAt is owned by the data store and
// refreshed on every create/update; callers never set it.
type Part struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Code     string       `json:"code"`
	Quantity int          `json:"quantity"`
	MinStock int          `json:"minStock"`
	Location string       `json:"location"`
	Supplier string       `json:"supplier"`
	Category PartCategory `json:"category"`
	UnitCost float64      `json:"unitCost"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock reports whether the part is below its minimum stock level.
func (p Part) LowStock() bool {
	return p.Quantity < p.MinStock
}
