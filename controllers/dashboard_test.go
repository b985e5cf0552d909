package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redcar-backend/models"
)

func TestDashboardOverview(t *testing.T) {
	r := setupRouter(t)
	token := bearerToken(t)

	// A part below its minimum on top of the seeded inventory
	w := doJSON(t, r, http.MethodPost, "/api/parts", token, gin.H{
		"name": "Disco de freio", "code": "DF-2200", "quantity": 1,
		"minStock": 3, "category": "brakes", "unitCost": 180.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A revision scheduled for tomorrow
	w = doJSON(t, r, http.MethodPost, "/api/revisions", token, gin.H{
		"clientName": "Paula Mendes", "clientPhone": "+5511966554433",
		"vehicleModel": "Jeep Renegade 2022", "licensePlate": "XYZ9A88",
		"serviceDescription": "Alinhamento e balanceamento",
		"scheduledDate":      time.Now().AddDate(0, 0, 1).Format(models.ScheduledDateLayout),
		"scheduledTime":      "11:00", "status": "scheduled", "priority": "low",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview struct {
		TotalParts     int     `json:"totalParts"`
		InventoryValue float64 `json:"inventoryValue"`
		LowStockParts  struct {
			Count int `json:"count"`
			List  []struct {
				Code string `json:"code"`
			} `json:"list"`
		} `json:"lowStockParts"`
		RevisionsByStatus map[string]int `json:"revisionsByStatus"`
		UpcomingRevisions []struct {
			ClientName string `json:"clientName"`
			Date       string `json:"date"`
		} `json:"upcomingRevisions"`
		ActiveTeamMembers  int `json:"activeTeamMembers"`
		ActiveClients      int `json:"activeClients"`
		PreferredSuppliers int `json:"preferredSuppliers"`
	}
	decodeBody(t, w, &overview)

	// Seeds: 4 parts (one already low stock), 2 active members, 2 active
	// clients, 1 preferred supplier, 2 scheduled revisions
	assert.Equal(t, 5, overview.TotalParts)
	assert.Greater(t, overview.InventoryValue, 0.0)
	assert.Equal(t, 2, overview.LowStockParts.Count)
	assert.Equal(t, 3, overview.RevisionsByStatus["scheduled"])
	assert.Equal(t, 0, overview.RevisionsByStatus["completed"])
	assert.Equal(t, 2, overview.ActiveTeamMembers)
	assert.Equal(t, 2, overview.ActiveClients)
	assert.Equal(t, 1, overview.PreferredSuppliers)

	// Tomorrow's revision shows up in the upcoming list
	foundTomorrow := false
	for _, u := range overview.UpcomingRevisions {
		if u.ClientName == "Paula Mendes" {
			assert.Equal(t, "Tomorrow", u.Date)
			foundTomorrow = true
		}
	}
	assert.True(t, foundTomorrow)
}
