package enemy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// ErrNoTemplates is returned when a roster has no template of the requested kind.
var ErrNoTemplates = errors.New("no enemy templates")

// Roster indexes enemy templates by ID and by kind.
// All methods are safe for concurrent use.
type Roster struct {
	mu     sync.RWMutex
	byID   map[string]*Template
	byKind map[Kind][]*Template
}

// NewRoster builds a roster from templates.
//
// Postcondition: Returns an error on the first invalid or duplicate template.
func NewRoster(templates []*Template) (*Roster, error) {
	r := &Roster{
		byID:   make(map[string]*Template),
		byKind: make(map[Kind][]*Template),
	}
	for _, t := range templates {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers tmpl.
//
// Precondition: tmpl must be non-nil.
// Postcondition: Returns an error if tmpl is invalid or its ID is taken.
func (r *Roster) Add(tmpl *Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[tmpl.ID]; ok {
		return fmt.Errorf("enemy template %q already registered", tmpl.ID)
	}
	r.byID[tmpl.ID] = tmpl
	list := append(r.byKind[tmpl.Kind], tmpl)
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	r.byKind[tmpl.Kind] = list
	return nil
}

// Get returns the template with the given ID.
func (r *Roster) Get(id string) (*Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	return t, ok
}

// ByName returns the template whose display name matches name, ignoring case.
func (r *Roster) ByName(name string) (*Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.byID {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// Templates returns every template of kind k, sorted by ID.
//
// Postcondition: returned slice is a fresh copy.
func (r *Roster) Templates(k Kind) []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Template, len(r.byKind[k]))
	copy(out, r.byKind[k])
	return out
}

// Random picks a template of kind k uniformly.
func (r *Roster) Random(k Kind, src dice.Source) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byKind[k]
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", k, ErrNoTemplates)
	}
	return list[dice.Pick(src, len(list))], nil
}

// Spawn picks a template of kind k and builds an enemy at the level that kind
// has on floor.
func (r *Roster) Spawn(k Kind, floor uint32, src dice.Source) (*Enemy, error) {
	tmpl, err := r.Random(k, src)
	if err != nil {
		return nil, err
	}
	return New(tmpl, LevelFor(k, floor)), nil
}

// Len returns the number of registered templates.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
