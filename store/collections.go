package store

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"redcar-backend/models"
)

// Mutations below share one shape: apply under the collection mutex, snapshot
// while still holding it, then schedule persistence. Update and Delete on an
// unknown id are silent no-ops; the bool result is informational, never an
// error. Newest records go first, so iteration order is reverse chronological.

// --- Parts ---

func (ds *DataStore) Parts() []models.Part {
	ds.partsMu.Lock()
	defer ds.partsMu.Unlock()
	return slices.Clone(ds.parts)
}

func (ds *DataStore) FindPart(id uuid.UUID) (models.Part, bool) {
	ds.partsMu.Lock()
	defer ds.partsMu.Unlock()
	for _, p := range ds.parts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Part{}, false
}

func (ds *DataStore) CreatePart(input models.Part) models.Part {
	ds.partsMu.Lock()
	input.ID = uuid.New()
	input.UpdatedAt = time.Now().UTC()
	ds.parts = prepend(ds.parts, input)
	snapshot := encode(ds.parts)
	ds.partsMu.Unlock()

	ds.schedulePersist(KeyParts, snapshot)
	return input
}

func (ds *DataStore) UpdatePart(id uuid.UUID, input models.Part) (models.Part, bool) {
	ds.partsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.parts {
		if ds.parts[i].ID == id {
			input.ID = id
			input.UpdatedAt = time.Now().UTC()
			ds.parts[i] = input
			found = true
			snapshot = encode(ds.parts)
			break
		}
	}
	ds.partsMu.Unlock()

	if !found {
		return models.Part{}, false
	}
	ds.schedulePersist(KeyParts, snapshot)
	return input, true
}

func (ds *DataStore) DeletePart(id uuid.UUID) bool {
	ds.partsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.parts {
		if ds.parts[i].ID == id {
			ds.parts = append(ds.parts[:i], ds.parts[i+1:]...)
			found = true
			snapshot = encode(ds.parts)
			break
		}
	}
	ds.partsMu.Unlock()

	if found {
		ds.schedulePersist(KeyParts, snapshot)
	}
	return found
}

// --- Revisions ---

func (ds *DataStore) Revisions() []models.Revision {
	ds.revisionsMu.Lock()
	defer ds.revisionsMu.Unlock()
	return slices.Clone(ds.revisions)
}

func (ds *DataStore) FindRevision(id uuid.UUID) (models.Revision, bool) {
	ds.revisionsMu.Lock()
	defer ds.revisionsMu.Unlock()
	for _, r := range ds.revisions {
		if r.ID == id {
			return r, true
		}
	}
	return models.Revision{}, false
}

func (ds *DataStore) CreateRevision(input models.Revision) models.Revision {
	ds.revisionsMu.Lock()
	input.ID = uuid.New()
	ds.revisions = prepend(ds.revisions, input)
	snapshot := encode(ds.revisions)
	ds.revisionsMu.Unlock()

	ds.schedulePersist(KeyRevisions, snapshot)
	return input
}

func (ds *DataStore) UpdateRevision(id uuid.UUID, input models.Revision) (models.Revision, bool) {
	ds.revisionsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.revisions {
		if ds.revisions[i].ID == id {
			input.ID = id
			ds.revisions[i] = input
			found = true
			snapshot = encode(ds.revisions)
			break
		}
	}
	ds.revisionsMu.Unlock()

	if !found {
		return models.Revision{}, false
	}
	ds.schedulePersist(KeyRevisions, snapshot)
	return input, true
}

func (ds *DataStore) DeleteRevision(id uuid.UUID) bool {
	ds.revisionsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.revisions {
		if ds.revisions[i].ID == id {
			ds.revisions = append(ds.revisions[:i], ds.revisions[i+1:]...)
			found = true
			snapshot = encode(ds.revisions)
			break
		}
	}
	ds.revisionsMu.Unlock()

	if found {
		ds.schedulePersist(KeyRevisions, snapshot)
	}
	return found
}

// --- Team members ---

func (ds *DataStore) TeamMembers() []models.TeamMember {
	ds.teamMu.Lock()
	defer ds.teamMu.Unlock()
	return slices.Clone(ds.team)
}

func (ds *DataStore) FindTeamMember(id uuid.UUID) (models.TeamMember, bool) {
	ds.teamMu.Lock()
	defer ds.teamMu.Unlock()
	for _, m := range ds.team {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

func (ds *DataStore) CreateTeamMember(input models.TeamMember) models.TeamMember {
	ds.teamMu.Lock()
	input.ID = uuid.New()
	ds.team = prepend(ds.team, input)
	snapshot := encode(ds.team)
	ds.teamMu.Unlock()

	ds.schedulePersist(KeyTeamMembers, snapshot)
	return input
}

func (ds *DataStore) UpdateTeamMember(id uuid.UUID, input models.TeamMember) (models.TeamMember, bool) {
	ds.teamMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.team {
		if ds.team[i].ID == id {
			input.ID = id
			ds.team[i] = input
			found = true
			snapshot = encode(ds.team)
			break
		}
	}
	ds.teamMu.Unlock()

	if !found {
		return models.TeamMember{}, false
	}
	ds.schedulePersist(KeyTeamMembers, snapshot)
	return input, true
}

// DeleteTeamMember removes the member only. Revisions or clients referencing
// it keep their dangling ids; references are never cascade-maintained.
func (ds *DataStore) DeleteTeamMember(id uuid.UUID) bool {
	ds.teamMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.team {
		if ds.team[i].ID == id {
			ds.team = append(ds.team[:i], ds.team[i+1:]...)
			found = true
			snapshot = encode(ds.team)
			break
		}
	}
	ds.teamMu.Unlock()

	if found {
		ds.schedulePersist(KeyTeamMembers, snapshot)
	}
	return found
}

// --- Clients ---

func (ds *DataStore) Clients() []models.Client {
	ds.clientsMu.Lock()
	defer ds.clientsMu.Unlock()
	return slices.Clone(ds.clients)
}

func (ds *DataStore) FindClient(id uuid.UUID) (models.Client, bool) {
	ds.clientsMu.Lock()
	defer ds.clientsMu.Unlock()
	for _, c := range ds.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (ds *DataStore) CreateClient(input models.Client) models.Client {
	ds.clientsMu.Lock()
	input.ID = uuid.New()
	ds.clients = prepend(ds.clients, input)
	snapshot := encode(ds.clients)
	ds.clientsMu.Unlock()

	ds.schedulePersist(KeyClients, snapshot)
	return input
}

func (ds *DataStore) UpdateClient(id uuid.UUID, input models.Client) (models.Client, bool) {
	ds.clientsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.clients {
		if ds.clients[i].ID == id {
			input.ID = id
			ds.clients[i] = input
			found = true
			snapshot = encode(ds.clients)
			break
		}
	}
	ds.clientsMu.Unlock()

	if !found {
		return models.Client{}, false
	}
	ds.schedulePersist(KeyClients, snapshot)
	return input, true
}

func (ds *DataStore) DeleteClient(id uuid.UUID) bool {
	ds.clientsMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.clients {
		if ds.clients[i].ID == id {
			ds.clients = append(ds.clients[:i], ds.clients[i+1:]...)
			found = true
			snapshot = encode(ds.clients)
			break
		}
	}
	ds.clientsMu.Unlock()

	if found {
		ds.schedulePersist(KeyClients, snapshot)
	}
	return found
}

// --- Suppliers ---

func (ds *DataStore) Suppliers() []models.Supplier {
	ds.suppliersMu.Lock()
	defer ds.suppliersMu.Unlock()
	return slices.Clone(ds.suppliers)
}

func (ds *DataStore) FindSupplier(id uuid.UUID) (models.Supplier, bool) {
	ds.suppliersMu.Lock()
	defer ds.suppliersMu.Unlock()
	for _, s := range ds.suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return models.Supplier{}, false
}

func (ds *DataStore) CreateSupplier(input models.Supplier) models.Supplier {
	ds.suppliersMu.Lock()
	input.ID = uuid.New()
	ds.suppliers = prepend(ds.suppliers, input)
	snapshot := encode(ds.suppliers)
	ds.suppliersMu.Unlock()

	ds.schedulePersist(KeySuppliers, snapshot)
	return input
}

func (ds *DataStore) UpdateSupplier(id uuid.UUID, input models.Supplier) (models.Supplier, bool) {
	ds.suppliersMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.suppliers {
		if ds.suppliers[i].ID == id {
			input.ID = id
			ds.suppliers[i] = input
			found = true
			snapshot = encode(ds.suppliers)
			break
		}
	}
	ds.suppliersMu.Unlock()

	if !found {
		return models.Supplier{}, false
	}
	ds.schedulePersist(KeySuppliers, snapshot)
	return input, true
}

func (ds *DataStore) DeleteSupplier(id uuid.UUID) bool {
	ds.suppliersMu.Lock()
	var snapshot []byte
	found := false
	for i := range ds.suppliers {
		if ds.suppliers[i].ID == id {
			ds.suppliers = append(ds.suppliers[:i], ds.suppliers[i+1:]...)
			found = true
			snapshot = encode(ds.suppliers)
			break
		}
	}
	ds.suppliersMu.Unlock()

	if found {
		ds.schedulePersist(KeySuppliers, snapshot)
	}
	return found
}
