package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redcar-backend/models"
)

func TestPartsCRUD(t *testing.T) {
	r := setupRouter(t)
	token := bearerToken(t)

	// Unauthenticated access is rejected
	w := doJSON(t, r, http.MethodGet, "/api/parts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create
	w = doJSON(t, r, http.MethodPost, "/api/parts", token, gin.H{
		"name": "Correia dentada", "code": "cd-1010", "quantity": 5,
		"minStock": 10, "location": "B2", "supplier": "AutoPeças Silva",
		"category": "engine", "unitCost": 89.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Part
	decodeBody(t, w, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "CD-1010", created.Code) // codes are upcased
	assert.Equal(t, 5, created.Quantity)
	assert.False(t, created.UpdatedAt.IsZero())

	// List: newest first
	w = doJSON(t, r, http.MethodGet, "/api/parts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var parts []models.Part
	decodeBody(t, w, &parts)
	require.NotEmpty(t, parts)
	assert.Equal(t, created.ID, parts[0].ID)

	// Read one
	w = doJSON(t, r, http.MethodGet, "/api/parts/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Update replaces every field
	w = doJSON(t, r, http.MethodPut, "/api/parts/"+created.ID.String(), token, gin.H{
		"name": "Correia dentada reforçada", "code": "CD-1010", "quantity": 8,
		"minStock": 4, "category": "engine", "unitCost": 99.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Part
	decodeBody(t, w, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, "", updated.Location) // full replacement, not a merge

	// Invalid body is rejected before reaching the store
	w = doJSON(t, r, http.MethodPost, "/api/parts", token, gin.H{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed id
	w = doJSON(t, r, http.MethodGet, "/api/parts/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown id on read is 404
	w = doJSON(t, r, http.MethodGet, "/api/parts/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown id on update is a no-op, not an error
	w = doJSON(t, r, http.MethodPut, "/api/parts/"+uuid.NewString(), token, gin.H{
		"name": "Nada", "code": "NA-0000", "category": "general",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete, then delete again: the second call is a no-op
	w = doJSON(t, r, http.MethodDelete, "/api/parts/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/parts/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/parts/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
