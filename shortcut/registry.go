package shortcut

// Registry collects shortcut modes from the parts of an application that
// own key bindings. It is not safe for concurrent use; in keyhint it lives
// inside the bubbletea update loop.
type Registry struct {
	modes []Mode
	index map[string]int // mode title -> position in modes
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends shortcuts to the named mode, creating it if needed.
// Modes keep the order in which they were first registered.
func (r *Registry) Register(mode string, shortcuts ...Shortcut) {
	i, ok := r.index[mode]
	if !ok {
		i = len(r.modes)
		r.index[mode] = i
		r.modes = append(r.modes, Mode{Title: mode})
	}
	r.modes[i].Shortcuts = append(r.modes[i].Shortcuts, shortcuts...)
}

func (r *Registry) RegisterModes(modes ...Mode) {
	for _, m := range modes {
		r.Register(m.Title, m.Shortcuts...)
	}
}

// Registered returns a deep copy of the currently registered modes, so
// callers can't alter the registry through it.
func (r *Registry) Registered() []Mode {
	return cloneModes(r.modes)
}

// Len is the total number of registered shortcuts.
func (r *Registry) Len() int {
	n := 0
	for _, m := range r.modes {
		n += len(m.Shortcuts)
	}
	return n
}

// MergeModes combines modes that share a title into the first of them, the
// same way Register does. The result is a copy.
func MergeModes(modes []Mode) []Mode {
	r := NewRegistry()
	r.RegisterModes(modes...)
	return r.Registered()
}
