package catalog

import (
	"sync"

	"livelyicons/internal/domain"
)

// IconStore provides access to icon data
type IconStore interface {
	GetIcon(name string) (domain.Icon, bool)
	GetAllIcons() []domain.Icon
	AddIcon(icon domain.Icon)
	RemoveIcon(name string)
	Names() []string
	Len() int
}

// MemoryIconStore is an in-memory implementation of IconStore.
// Icons keep their insertion order so ranking ties stay stable.
type MemoryIconStore struct {
	mu    sync.RWMutex
	icons map[string]domain.Icon
	order []string
}

// NewMemoryIconStore creates a new memory-based icon store
func NewMemoryIconStore(icons ...domain.Icon) *MemoryIconStore {
	s := &MemoryIconStore{
		icons: make(map[string]domain.Icon, len(icons)),
	}
	for _, icon := range icons {
		s.AddIcon(icon)
	}
	return s
}

func (s *MemoryIconStore) GetIcon(name string) (domain.Icon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	icon, ok := s.icons[name]
	return icon, ok
}

// GetAllIcons returns a copy of every icon in insertion order
func (s *MemoryIconStore) GetAllIcons() []domain.Icon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Icon, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.icons[name])
	}
	return result
}

// AddIcon inserts icon or replaces the icon with the same name in place
func (s *MemoryIconStore) AddIcon(icon domain.Icon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.icons[icon.Name]; !exists {
		s.order = append(s.order, icon.Name)
	}
	s.icons[icon.Name] = icon
}

func (s *MemoryIconStore) RemoveIcon(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.icons[name]; !exists {
		return
	}
	delete(s.icons, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Names returns icon names in insertion order
func (s *MemoryIconStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

func (s *MemoryIconStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
