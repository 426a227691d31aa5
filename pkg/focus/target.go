package focus

import "reflect"

// Focuser is implemented by targets that can receive focus.
type Focuser interface {
	Focus() error
}

// Ref points at a UI target that may not exist yet. Current returns nil
// while nothing is attached.
type Ref interface {
	Current() any
}

// Refs maps field identifiers to their refs. A nil Refs is rejected by
// FocusFirstError; an empty one is valid.
type Refs map[string]Ref

// Handle is a mutable Ref.
type Handle struct {
	Target any
}

// NewHandle returns a Handle pointing at target.
func NewHandle(target any) *Handle {
	return &Handle{Target: target}
}

// Current returns the attached target; a nil Handle has none.
func (h *Handle) Current() any {
	if h == nil {
		return nil
	}
	return h.Target
}

// Set attaches target.
func (h *Handle) Set(target any) {
	if h != nil {
		h.Target = target
	}
}

// RefFunc adapts a function to Ref.
type RefFunc func() any

// Current calls f.
func (f RefFunc) Current() any {
	if f == nil {
		return nil
	}
	return f()
}

// resolveFocuser walks ref to a callable Focuser, reporting false at the
// first missing level. Current is called once.
func resolveFocuser(ref Ref) (Focuser, bool) {
	return asFocuser(currentOf(ref))
}

func currentOf(ref Ref) any {
	if isNil(ref) {
		return nil
	}
	return ref.Current()
}

func asFocuser(target any) (Focuser, bool) {
	if isNil(target) {
		return nil, false
	}
	focuser, ok := target.(Focuser)
	return focuser, ok
}

// isNil also catches typed nils stored in interfaces.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
