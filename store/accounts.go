package store

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"redcar-backend/models"
)

// User accounts, reminder logs and the workshop profile live under their own
// storage keys and go through the same mutate-then-persist cycle as the
// entity collections.

func (ds *DataStore) CreateUser(input models.User) models.User {
	ds.usersMu.Lock()
	input.ID = uuid.New()
	input.CreatedAt = time.Now().UTC()
	ds.users = prepend(ds.users, input)
	snapshot := encode(ds.users)
	ds.usersMu.Unlock()

	ds.schedulePersist(KeyUsers, snapshot)
	return input
}

// FindUserByIdentifier matches email or phone, the two ways the login screen
// identifies an account.
func (ds *DataStore) FindUserByIdentifier(identifier string) (models.User, bool) {
	identifier = strings.TrimSpace(identifier)
	ds.usersMu.Lock()
	defer ds.usersMu.Unlock()
	for _, u := range ds.users {
		if strings.EqualFold(u.Email, identifier) || u.Phone == identifier {
			return u, true
		}
	}
	return models.User{}, false
}

func (ds *DataStore) FindUser(id uuid.UUID) (models.User, bool) {
	ds.usersMu.Lock()
	defer ds.usersMu.Unlock()
	for _, u := range ds.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (ds *DataStore) TouchUserLastLogin(id uuid.UUID) {
	ds.usersMu.Lock()
	var snapshot []byte
	for i := range ds.users {
		if ds.users[i].ID == id {
			now := time.Now().UTC()
			ds.users[i].LastLogin = &now
			snapshot = encode(ds.users)
			break
		}
	}
	ds.usersMu.Unlock()

	if snapshot != nil {
		ds.schedulePersist(KeyUsers, snapshot)
	}
}

func (ds *DataStore) AppendReminderLog(input models.ReminderLog) models.ReminderLog {
	ds.logsMu.Lock()
	input.ID = uuid.New()
	if input.SentAt.IsZero() {
		input.SentAt = time.Now().UTC()
	}
	ds.logs = prepend(ds.logs, input)
	snapshot := encode(ds.logs)
	ds.logsMu.Unlock()

	ds.schedulePersist(KeyReminderLogs, snapshot)
	return input
}

func (ds *DataStore) ReminderLogs() []models.ReminderLog {
	ds.logsMu.Lock()
	defer ds.logsMu.Unlock()
	return slices.Clone(ds.logs)
}

func (ds *DataStore) Profile() models.WorkshopProfile {
	ds.profileMu.Lock()
	defer ds.profileMu.Unlock()
	return ds.profile
}

func (ds *DataStore) SaveProfile(profile models.WorkshopProfile) {
	ds.profileMu.Lock()
	ds.profile = profile
	snapshot := encode(ds.profile)
	ds.profileMu.Unlock()

	ds.schedulePersist(KeyProfile, snapshot)
}
