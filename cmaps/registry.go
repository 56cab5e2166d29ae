package cmaps

import (
	"sort"
	"strings"
	"sync"

	"github.com/vdobler/prettyplot/errors"
)

// Store keeps colormaps by name.
type Store interface {
	// Add registers cm unless its name is taken and reports whether it
	// was added.
	Add(cm Colormap) bool
	Get(name string) (Colormap, error)
}

// Registry is a Store safe for concurrent use.
type Registry struct {
	sync.RWMutex
	maps  map[string]Colormap
	order []string
}

func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]Colormap, 128)}
}

// Default is the registry shared by style contexts that were not given
// their own.
var Default = NewRegistry()

func (r *Registry) Add(cm Colormap) bool {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.maps[cm.Name()]; ok {
		return false
	}
	r.maps[cm.Name()] = cm
	r.order = append(r.order, cm.Name())
	return true
}

func (r *Registry) Find(name string) (Colormap, bool) {
	r.RLock()
	defer r.RUnlock()
	cm, ok := r.maps[name]
	return cm, ok
}

func (r *Registry) Get(name string) (Colormap, error) {
	if cm, ok := r.Find(name); ok {
		return cm, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "colormap %q is not registered%s", name, r.suggest(name))
}

func (r *Registry) suggest(name string) string {
	var near []string
	for _, n := range r.Names() {
		if strings.Contains(n, name) || strings.Contains(name, n) {
			near = append(near, n)
		}
	}
	if len(near) == 0 || len(near) > 5 {
		return ""
	}
	return ", did you mean one of [" + strings.Join(near, ", ") + "]"
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.order)
}
