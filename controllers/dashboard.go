package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"redcar-backend/models"
	"redcar-backend/utils"
)

type LowStockPart struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"minStock"`
}

type UpcomingRevision struct {
	ClientName   string `json:"clientName"`
	VehicleModel string `json:"vehicleModel"`
	Date         string `json:"date"` // e.g. "Today", "Tomorrow", "3 days"
	Time         string `json:"time"`
}

// GetDashboardOverview aggregates the dashboard figures shown on the home
// screen: inventory totals, low-stock alerts, revision counts by status,
// the week's upcoming revisions, and headcounts.
func GetDashboardOverview(c *gin.Context) {
	parts := Store.Parts()
	revisions := Store.Revisions()
	team := Store.TeamMembers()
	clients := Store.Clients()
	suppliers := Store.Suppliers()

	// Inventory value and low-stock alerts
	var inventoryValue float64
	var lowStock []LowStockPart
	for _, p := range parts {
		inventoryValue += float64(p.Quantity) * p.UnitCost
		if p.LowStock() {
			lowStock = append(lowStock, LowStockPart{
				Name:     p.Name,
				Code:     p.Code,
				Quantity: p.Quantity,
				MinStock: p.MinStock,
			})
		}
	}

	// Revision counts by status
	revisionsByStatus := map[models.RevisionStatus]int{
		models.RevisionScheduled:  0,
		models.RevisionInProgress: 0,
		models.RevisionCompleted:  0,
	}
	for _, r := range revisions {
		revisionsByStatus[r.Status]++
	}

	// Upcoming scheduled revisions (next 7 days). Both sides are compared at
	// date precision so the local timezone cannot shift the bucket.
	today, _ := time.Parse(models.ScheduledDateLayout, time.Now().Format(models.ScheduledDateLayout))
	var upcoming []UpcomingRevision
	for _, r := range revisions {
		if r.Status != models.RevisionScheduled {
			continue
		}
		date, err := time.Parse(models.ScheduledDateLayout, r.ScheduledDate)
		if err != nil {
			continue
		}
		daysUntil := utils.DaysBetween(today, date)
		if daysUntil < 0 || daysUntil > 6 {
			continue
		}
		var label string
		switch daysUntil {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", daysUntil)
		}
		upcoming = append(upcoming, UpcomingRevision{
			ClientName:   r.ClientName,
			VehicleModel: r.VehicleModel,
			Date:         label,
			Time:         r.ScheduledTime,
		})
	}

	// Headcounts
	activeTeamMembers := 0
	for _, m := range team {
		if m.Active {
			activeTeamMembers++
		}
	}

	activeClients := 0
	clientsByTier := map[models.ClientTier]int{}
	for _, cl := range clients {
		if cl.Active {
			activeClients++
		}
		clientsByTier[cl.Tier]++
	}

	preferredSuppliers := 0
	for _, s := range suppliers {
		if s.Preferred {
			preferredSuppliers++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalParts":     len(parts),
		"inventoryValue": inventoryValue,
		"lowStockParts": gin.H{
			"count": len(lowStock),
			"list":  lowStock,
		},
		"revisionsByStatus":  revisionsByStatus,
		"upcomingRevisions":  upcoming,
		"activeTeamMembers":  activeTeamMembers,
		"totalTeamMembers":   len(team),
		"activeClients":      activeClients,
		"clientsByTier":      clientsByTier,
		"totalSuppliers":     len(suppliers),
		"preferredSuppliers": preferredSuppliers,
	})
}
