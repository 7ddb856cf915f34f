package lint

import (
	"cmp"
	"slices"
	"sync"

	"github.com/yaklabco/goslang/pkg/config"
)

// Registry holds all registered checks.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Check
	byName  map[string]Check
	aliases map[string]string // alias -> check ID
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Check),
		byName:  make(map[string]Check),
		aliases: make(map[string]string),
	}
}

// Register adds a check to the registry.
// If a check with the same ID already exists, it is replaced.
func (r *Registry) Register(check Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if previous, ok := r.byID[check.ID()]; ok {
		delete(r.byName, previous.Name())
	}
	r.byID[check.ID()] = check
	r.byName[check.Name()] = check
}

// RegisterAlias makes alias resolve to the check with the given ID, so
// configurations may use keys of other tools such as "S3776".
func (r *Registry) RegisterAlias(alias, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = id
}

// Get retrieves a check by ID, name or alias, in that order.
func (r *Registry) Get(key string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if check, ok := r.byID[key]; ok {
		return check, true
	}
	if check, ok := r.byName[key]; ok {
		return check, true
	}
	if id, ok := r.aliases[key]; ok {
		check, found := r.byID[id]
		return check, found
	}
	return nil, false
}

// Aliases returns the aliases of the check with the given ID, sorted.
func (r *Registry) Aliases(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []string
	for alias, target := range r.aliases {
		if target == id {
			result = append(result, alias)
		}
	}
	slices.Sort(result)
	return result
}

// GetByID retrieves a check by its ID only.
func (r *Registry) GetByID(id string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	check, ok := r.byID[id]
	return check, ok
}

// Resolve returns the canonical ID and check for a given key.
// The key can be a check ID, name or alias.
// Returns (id, check, found).
func (r *Registry) Resolve(key string) (string, Check, bool) {
	check, ok := r.Get(key)
	if !ok {
		return "", nil, false
	}
	return check.ID(), check, true
}

// Checks returns all registered checks sorted by ID.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Check, 0, len(r.byID))
	for _, check := range r.byID {
		result = append(result, check)
	}

	slices.SortFunc(result, func(a, b Check) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered check IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// RuleInfos describes every registered check for configuration templates.
func (r *Registry) RuleInfos() []config.RuleInfo {
	checks := r.Checks()
	infos := make([]config.RuleInfo, 0, len(checks))
	for _, check := range checks {
		infos = append(infos, config.RuleInfo{
			ID:          check.ID(),
			Name:        check.Name(),
			Description: check.Description(),
			Enabled:     check.DefaultEnabled(),
			Severity:    check.DefaultSeverity(),
			Tags:        check.Tags(),
		})
	}
	return infos
}

// DefaultRegistry is the global registry for built-in checks.
// Checks register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for check registration
var DefaultRegistry = NewRegistry()
