// Package controllers holds the gin handlers behind the RedCar screens.
package controllers

import "redcar-backend/store"

// Store is the data store every handler reads and mutates. Set once at
// startup via Init.
var Store *store.DataStore

func Init(s *store.DataStore) {
	Store = s
}
