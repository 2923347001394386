package figures

import "sync"

// FigureRegistry is the view of the registry that the comparison harness
// depends on: listing the currently open figures and force-closing them.
type FigureRegistry interface {
	List() []Figure
	Count() int
	CloseAll()
}

// Registry tracks the figures that are currently open, in the order they
// were opened. Tests run serially, but a mutex still guards the slice so a
// registry can be shared with helper goroutines inside one test.
type Registry struct {
	lock sync.Mutex
	open []Figure
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Open adds a figure to the registry. Figures are listed in open order.
func (r *Registry) Open(fig Figure) {
	r.lock.Lock()
	r.open = append(r.open, fig)
	r.lock.Unlock()
}

// List returns a copy of the open figures in open order.
func (r *Registry) List() []Figure {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Figure(nil), r.open...)
}

func (r *Registry) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.open)
}

// CloseAll closes every open figure and empties the registry. Close errors
// are ignored; draining the registry must always succeed.
func (r *Registry) CloseAll() {
	r.lock.Lock()
	open := r.open
	r.open = nil
	r.lock.Unlock()
	for _, fig := range open {
		if c, ok := fig.(Closer); ok {
			_ = c.Close()
		}
	}
}
