package attribution

import (
	"reflect"

	"github.com/philipp01105/bridgelog/core"
)

// Predicate reports whether calls from source should defer to the sink's
// ambient attribution instead of naming source.
type Predicate func(source *core.Source) bool

// Never is a Predicate that keeps every source
func Never(*core.Source) bool { return false }

// Implements returns a Predicate that matches sources whose type, or a
// pointer to it, implements any of ifaces. Use it with the marker
// interfaces of host roles that run on behalf of the current context:
//
//	ambient := attribution.Implements(
//		reflect.TypeFor[Screen](),
//		reflect.TypeFor[Action](),
//	)
//
// Non-interface types in ifaces are ignored.
func Implements(ifaces ...reflect.Type) Predicate {
	var roles []reflect.Type
	for _, it := range ifaces {
		if it != nil && it.Kind() == reflect.Interface {
			roles = append(roles, it)
		}
	}

	return func(source *core.Source) bool {
		if source == nil || source.Type == nil {
			return false
		}
		t := source.Type
		for _, role := range roles {
			if t.Implements(role) {
				return true
			}
			if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(role) {
				return true
			}
		}
		return false
	}
}

// Any combines predicates; the result matches when any of them does.
func Any(preds ...Predicate) Predicate {
	return func(source *core.Source) bool {
		for _, p := range preds {
			if p != nil && p(source) {
				return true
			}
		}
		return false
	}
}

// IsAmbient evaluates p and recovers from a panicking predicate, which
// counts as no match. A nil p never matches.
func IsAmbient(p Predicate, source *core.Source) (ambient bool) {
	if p == nil || source == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ambient = false
		}
	}()
	return p(source)
}
