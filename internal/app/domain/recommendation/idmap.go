package recommendation

import "github.com/FACorreiaa/passadia/internal/app/models"

// IDMapper translates between catalog numeric ids and storage keys. It is
// rebuilt from a catalog snapshot for every request.
type IDMapper struct {
	keyByID map[int]string
	idByKey map[string]int
}

// NewIDMapper indexes the catalog. Walkways without a numeric id or without a
// storage key are left out.
func NewIDMapper(walkways []models.Walkway) *IDMapper {
	m := &IDMapper{
		keyByID: make(map[int]string, len(walkways)),
		idByKey: make(map[string]int, len(walkways)),
	}
	for _, w := range walkways {
		if w.ID == 0 || w.StorageKey == "" {
			continue
		}
		m.keyByID[w.ID] = w.StorageKey
		m.idByKey[w.StorageKey] = w.ID
	}
	return m
}

// StorageKey normalizes ref to a storage key. Refs the catalog does not know
// are returned unchanged.
func (m *IDMapper) StorageKey(ref models.WalkwayRef) string {
	if id, ok := ref.Int(); ok {
		if key, found := m.keyByID[id]; found {
			return key
		}
	}
	return ref.String()
}

// NumericID normalizes ref to a catalog numeric id.
func (m *IDMapper) NumericID(ref models.WalkwayRef) (int, bool) {
	if id, ok := ref.Int(); ok {
		if _, found := m.keyByID[id]; found {
			return id, true
		}
	}
	if id, found := m.idByKey[ref.String()]; found {
		return id, true
	}
	return ref.Int()
}

// StorageKeys maps refs in order, dropping empty refs and duplicates.
func (m *IDMapper) StorageKeys(refs []models.WalkwayRef) []string {
	keys := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if ref.IsZero() {
			continue
		}
		key := m.StorageKey(ref)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// HistoryRefs extracts the walkway refs of a user's history, one per entry.
func HistoryRefs(u *models.User) []models.WalkwayRef {
	refs := make([]models.WalkwayRef, 0, len(u.History))
	for _, h := range u.History {
		refs = append(refs, h.WalkwayID)
	}
	return refs
}

// ExploredKeys is the set of storage keys a user has walked or favorited.
func (m *IDMapper) ExploredKeys(u *models.User) map[string]struct{} {
	keys := make(map[string]struct{}, len(u.History)+len(u.Favorites))
	for _, k := range m.StorageKeys(HistoryRefs(u)) {
		keys[k] = struct{}{}
	}
	for _, k := range m.StorageKeys(u.Favorites) {
		keys[k] = struct{}{}
	}
	return keys
}
