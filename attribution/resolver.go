package attribution

import (
	"reflect"
	"strings"
	"sync"

	"github.com/philipp01105/bridgelog/core"
)

// Resolver maps a logger name to the source its calls are attributed to
type Resolver interface {
	Resolve(name string) (*core.Source, bool)
}

// ResolverFunc adapts a function to a Resolver
type ResolverFunc func(name string) (*core.Source, bool)

// Resolve implements Resolver
func (f ResolverFunc) Resolve(name string) (*core.Source, bool) {
	return f(name)
}

// Nop is a Resolver that never resolves a source
var Nop Resolver = ResolverFunc(func(string) (*core.Source, bool) {
	return nil, false
})

// TypeName returns the dotted name of t: its package path with slashes
// turned into dots, then the type name. Pointer types are named after
// their element type. Unnamed types yield "".
func TypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return ""
	}
	pkg := strings.ReplaceAll(t.PkgPath(), "/", ".")
	if pkg == "" {
		return t.Name()
	}
	return pkg + "." + t.Name()
}

// NameOf returns the dotted type name of v, see TypeName.
func NameOf(v any) string {
	if v == nil {
		return ""
	}
	return TypeName(reflect.TypeOf(v))
}

// Registry is a Resolver backed by explicitly registered types. It is
// safe for concurrent use.
type Registry struct {
	sources sync.Map // map[string]*core.Source
}

// NewRegistry creates a registry holding values
func NewRegistry(values ...any) *Registry {
	r := &Registry{}
	r.Register(values...)
	return r
}

// Register adds each value under its dotted type name. A value that is a
// reflect.Type registers that type without an object. Values of unnamed
// types are ignored. The first registration of a name wins.
func (r *Registry) Register(values ...any) {
	for _, v := range values {
		if v == nil {
			continue
		}
		t, ok := v.(reflect.Type)
		var obj any
		if !ok {
			t = reflect.TypeOf(v)
			obj = v
		}
		name := TypeName(t)
		if name == "" {
			continue
		}
		r.sources.LoadOrStore(name, &core.Source{Name: name, Type: t, Value: obj})
	}
}

// RegisterName adds v under an explicit name, for loggers whose name does
// not follow the Go package path.
func (r *Registry) RegisterName(name string, v any) {
	if name == "" || v == nil {
		return
	}
	t, ok := v.(reflect.Type)
	var obj any
	if !ok {
		t = reflect.TypeOf(v)
		obj = v
	}
	r.sources.LoadOrStore(name, &core.Source{Name: name, Type: t, Value: obj})
}

// Resolve implements Resolver
func (r *Registry) Resolve(name string) (*core.Source, bool) {
	v, ok := r.sources.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*core.Source), true
}

// Resolve runs r and recovers from a panicking resolver, treating it as
// unresolved. A nil r never resolves.
func Resolve(r Resolver, name string) (source *core.Source, ok bool) {
	if r == nil {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			source, ok = nil, false
		}
	}()
	source, ok = r.Resolve(name)
	if source == nil {
		ok = false
	}
	return source, ok
}
