// Package store implements the local data store behind the RedCar screens:
// five in-memory entity collections mirrored to persistent key-value storage
// as one JSON document per collection.
package store

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"redcar-backend/models"
)

// Storage keys, one per collection.
const (
	KeyParts        = "redcar:parts"
	KeyRevisions    = "redcar:revisions"
	KeyTeamMembers  = "redcar:team_members"
	KeyClients      = "redcar:clients"
	KeySuppliers    = "redcar:suppliers"
	KeyUsers        = "redcar:users"
	KeyReminderLogs = "redcar:reminder_logs"
	KeyProfile      = "redcar:profile"
)

// DataStore owns the canonical in-memory collections and keeps them mirrored
// in the KV. Mutations apply under a per-collection mutex and hand a full
// serialized snapshot to that collection's single-writer persist queue, so
// overlapping writes always land newest-last. Callers never wait on
// persistence and persistence failures are never surfaced to them.
type DataStore struct {
	kv    KV
	ready atomic.Bool

	partsMu sync.Mutex
	parts   []models.Part

	revisionsMu sync.Mutex
	revisions   []models.Revision

	teamMu sync.Mutex
	team   []models.TeamMember

	clientsMu sync.Mutex
	clients   []models.Client

	suppliersMu sync.Mutex
	suppliers   []models.Supplier

	usersMu sync.Mutex
	users   []models.User

	logsMu sync.Mutex
	logs   []models.ReminderLog

	profileMu sync.Mutex
	profile   models.WorkshopProfile

	queues map[string]*persistQueue
}

// Open loads every collection from the KV, seeding absent keys, and returns
// the store once all loads have resolved. A load or parse failure falls back
// to seed data in memory only; the stored value is left as-is until the next
// successful persist replaces it.
func Open(kv KV) *DataStore {
	ds := &DataStore{
		kv:     kv,
		queues: make(map[string]*persistQueue),
	}
	for _, key := range []string{
		KeyParts, KeyRevisions, KeyTeamMembers, KeyClients, KeySuppliers,
		KeyUsers, KeyReminderLogs, KeyProfile,
	} {
		ds.queues[key] = newPersistQueue(kv, key)
	}

	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); ds.parts = loadCollection(kv, KeyParts, SeedParts) }()
	go func() { defer wg.Done(); ds.revisions = loadCollection(kv, KeyRevisions, SeedRevisions) }()
	go func() { defer wg.Done(); ds.team = loadCollection(kv, KeyTeamMembers, SeedTeamMembers) }()
	go func() { defer wg.Done(); ds.clients = loadCollection(kv, KeyClients, SeedClients) }()
	go func() { defer wg.Done(); ds.suppliers = loadCollection(kv, KeySuppliers, SeedSuppliers) }()
	go func() {
		defer wg.Done()
		ds.users = loadCollection(kv, KeyUsers, func() []models.User { return []models.User{} })
		ds.logs = loadCollection(kv, KeyReminderLogs, func() []models.ReminderLog { return []models.ReminderLog{} })
		ds.profile = loadProfile(kv)
	}()
	wg.Wait()

	ds.ready.Store(true)
	return ds
}

// Ready reports whether the initial load of every collection has resolved.
func (ds *DataStore) Ready() bool {
	return ds.ready.Load()
}

// Flush blocks until every snapshot scheduled so far has been written.
// Intended for shutdown and tests.
func (ds *DataStore) Flush() {
	for _, q := range ds.queues {
		q.flush()
	}
}

// Close drains the persist queues and stops their writers. The store must
// not be used afterwards.
func (ds *DataStore) Close() {
	for _, q := range ds.queues {
		q.close()
	}
	for _, q := range ds.queues {
		q.flush()
	}
}

// schedulePersist hands a serialized snapshot to the collection's writer.
// Before the store is ready nothing is scheduled; the startup loader owns
// storage until then.
func (ds *DataStore) schedulePersist(key string, snapshot []byte) {
	if snapshot == nil || !ds.ready.Load() {
		return
	}
	ds.queues[key].enqueue(string(snapshot))
}

// encode marshals a collection snapshot, logging instead of failing since
// persistence is best-effort.
func encode(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Warn("failed to serialize collection snapshot")
		return nil
	}
	return data
}

func loadCollection[T any](kv KV, key string, seed func() []T) []T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.WithError(err).WithField("collection", key).Warn("storage read failed; using seed data in memory")
		return seed()
	}
	if !ok {
		items := seed()
		if data, err := json.Marshal(items); err == nil {
			if err := kv.Set(key, string(data)); err != nil {
				log.WithError(err).WithField("collection", key).Warn("failed to write seed data")
			}
		}
		return items
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.WithError(err).WithField("collection", key).Warn("stored collection is corrupt; using seed data in memory")
		return seed()
	}
	return items
}

func loadProfile(kv KV) models.WorkshopProfile {
	raw, ok, err := kv.Get(KeyProfile)
	if err != nil {
		log.WithError(err).Warn("storage read failed for profile; using defaults")
		return models.DefaultWorkshopProfile()
	}
	if !ok {
		profile := models.DefaultWorkshopProfile()
		if data, err := json.Marshal(profile); err == nil {
			if err := kv.Set(KeyProfile, string(data)); err != nil {
				log.WithError(err).Warn("failed to write default profile")
			}
		}
		return profile
	}

	var profile models.WorkshopProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.WithError(err).Warn("stored profile is corrupt; using defaults")
		return models.DefaultWorkshopProfile()
	}
	return profile
}

func prepend[T any](items []T, rec T) []T {
	return append([]T{rec}, items...)
}

// persistQueue is the single writer for one collection key. Enqueued
// snapshots coalesce: a snapshot that arrives while another is pending
// replaces it, so the last write always reflects the newest in-memory state.
type persistQueue struct {
	kv  KV
	key string

	mu      sync.Mutex
	cond    *sync.Cond
	pending string
	dirty   bool
	idle    bool
	closed  bool
}

func newPersistQueue(kv KV, key string) *persistQueue {
	q := &persistQueue{kv: kv, key: key, idle: true}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *persistQueue) enqueue(value string) {
	q.mu.Lock()
	q.pending = value
	q.dirty = true
	q.idle = false
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *persistQueue) run() {
	q.mu.Lock()
	for {
		for !q.dirty && !q.closed {
			q.cond.Wait()
		}
		if !q.dirty && q.closed {
			q.idle = true
			q.cond.Broadcast()
			q.mu.Unlock()
			return
		}
		value := q.pending
		q.dirty = false
		q.mu.Unlock()

		if err := q.kv.Set(q.key, value); err != nil {
			// Best-effort: in-memory state stays ahead of storage until the
			// next successful write.
			log.WithError(err).WithField("collection", q.key).Warn("persist failed")
		}

		q.mu.Lock()
		if !q.dirty {
			q.idle = true
			q.cond.Broadcast()
		}
	}
}

// flush blocks until the writer has no pending snapshot.
func (q *persistQueue) flush() {
	q.mu.Lock()
	for !q.idle {
		q.cond.Wait()
	}
	q.mu.Unlock()
}

func (q *persistQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
