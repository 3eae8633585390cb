package preset

// Store exposes preset retrieval for handlers and services.
type Store interface {
	List() []Preset
	FindByID(id string) (Preset, bool)
	Resolve(id string) Preset
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Preset
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied presets.
// The slice must be non-empty; the first entry serves as the default.
func NewMemoryStore(items []Preset) *MemoryStore {
	return &MemoryStore{items: append([]Preset(nil), items...)}
}

// List returns the catalog in declaration order.
func (s *MemoryStore) List() []Preset {
	return append([]Preset(nil), s.items...)
}

// FindByID looks up a preset by identifier.
func (s *MemoryStore) FindByID(id string) (Preset, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Preset{}, false
}

// Resolve returns the preset for id, or the default (first) entry when the
// id is empty or unknown. Absence is normal fallback, never an error.
func (s *MemoryStore) Resolve(id string) Preset {
	if id != "" {
		if item, ok := s.FindByID(id); ok {
			return item
		}
	}
	return s.items[0]
}
