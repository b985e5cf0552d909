package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMe(t *testing.T) {
	r := setupRouter(t)

	// Register
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": "Dono@RedCar.com.br", "phone": "+5511999887766",
		"name": "Dono da Oficina", "password": "segredo-forte",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &registered)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "dono@redcar.com.br", registered.User.Email)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	// Duplicate registration is rejected
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": "dono@redcar.com.br", "phone": "+5511999887766",
		"name": "Outro", "password": "outra-senha-1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login by email, case-insensitive
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"identifier": "DONO@redcar.com.br", "password": "segredo-forte",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var logged struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &logged)
	require.NotEmpty(t, logged.Token)

	// Login by phone with the wrong password
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"identifier": "+5511999887766", "password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown identifier
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"identifier": "ninguem@redcar.com.br", "password": "tanto-faz",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Me with the login token
	w = doJSON(t, r, http.MethodGet, "/auth/me", "Bearer "+logged.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dono@redcar.com.br")
	assert.Contains(t, w.Body.String(), "lastLogin")
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	// Short password
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": "a@b.com", "phone": "+5511999887766", "name": "A", "password": "curta",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad phone
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": "a@b.com", "phone": "abc", "name": "A", "password": "senha-grande",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
