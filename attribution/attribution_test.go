package attribution_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/bridgelog/attribution"
	"github.com/philipp01105/bridgelog/core"
)

type screen interface{ Title() string }

type action interface{ Execute() error }

type welcomeScreen struct{}

func (welcomeScreen) Title() string { return "Welcome" }

type installAction struct{}

func (*installAction) Execute() error { return nil }

type plainService struct{ id int }

func TestTypeName(t *testing.T) {
	t.Parallel()

	const pkg = "github.com.philipp01105.bridgelog.attribution_test"

	assert.Equal(t, pkg+".plainService", attribution.NameOf(plainService{}))
	assert.Equal(t, pkg+".plainService", attribution.NameOf(&plainService{}))
	assert.Equal(t, "int", attribution.NameOf(42))
	assert.Empty(t, attribution.NameOf([]int{1}))
	assert.Empty(t, attribution.NameOf(nil))
	assert.Empty(t, attribution.TypeName(nil))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	svc := &plainService{id: 7}
	reg := attribution.NewRegistry(svc, reflect.TypeFor[welcomeScreen](), nil, []string{"unnamed"})

	src, ok := reg.Resolve(attribution.NameOf(svc))
	require.True(t, ok)
	assert.Same(t, svc, src.Value)
	assert.Equal(t, reflect.TypeOf(svc), src.Type)

	src, ok = reg.Resolve(attribution.TypeName(reflect.TypeFor[welcomeScreen]()))
	require.True(t, ok)
	assert.Nil(t, src.Value)

	_, ok = reg.Resolve("org.example.Unknown")
	assert.False(t, ok)
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	first := &plainService{id: 1}
	reg := attribution.NewRegistry(first)
	reg.Register(&plainService{id: 2})

	src, ok := reg.Resolve(attribution.NameOf(first))
	require.True(t, ok)
	assert.Same(t, first, src.Value)
}

func TestRegistry_RegisterName(t *testing.T) {
	t.Parallel()

	reg := attribution.NewRegistry()
	reg.RegisterName("org.example.Installer", &installAction{})
	reg.RegisterName("", &installAction{})
	reg.RegisterName("org.example.Nothing", nil)

	src, ok := reg.Resolve("org.example.Installer")
	require.True(t, ok)
	assert.Equal(t, "org.example.Installer", src.Name)

	_, ok = reg.Resolve("org.example.Nothing")
	assert.False(t, ok)
}

func TestResolve_Guards(t *testing.T) {
	t.Parallel()

	_, ok := attribution.Resolve(nil, "a")
	assert.False(t, ok)

	_, ok = attribution.Resolve(attribution.Nop, "a")
	assert.False(t, ok)

	panicky := attribution.ResolverFunc(func(string) (*core.Source, bool) {
		panic("boom")
	})
	_, ok = attribution.Resolve(panicky, "a")
	assert.False(t, ok)

	liar := attribution.ResolverFunc(func(string) (*core.Source, bool) {
		return nil, true
	})
	_, ok = attribution.Resolve(liar, "a")
	assert.False(t, ok)
}

func TestImplements(t *testing.T) {
	t.Parallel()

	ambient := attribution.Implements(
		reflect.TypeFor[screen](),
		reflect.TypeFor[action](),
		reflect.TypeFor[int](),
	)

	tests := []struct {
		name   string
		source *core.Source
		want   bool
	}{
		{"value receiver", &core.Source{Type: reflect.TypeFor[welcomeScreen]()}, true},
		{"pointer to value receiver", &core.Source{Type: reflect.TypeFor[*welcomeScreen]()}, true},
		{"pointer receiver on value type", &core.Source{Type: reflect.TypeFor[installAction]()}, true},
		{"pointer receiver", &core.Source{Type: reflect.TypeFor[*installAction]()}, true},
		{"unrelated", &core.Source{Type: reflect.TypeFor[plainService]()}, false},
		{"no type", &core.Source{Name: "x"}, false},
		{"nil source", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ambient(tt.source))
		})
	}
}

func TestAnyAndIsAmbient(t *testing.T) {
	t.Parallel()

	src := &core.Source{Name: "x", Type: reflect.TypeFor[plainService]()}
	yes := func(*core.Source) bool { return true }
	boom := func(*core.Source) bool { panic("boom") }

	assert.True(t, attribution.Any(nil, attribution.Never, yes)(src))
	assert.False(t, attribution.Any(attribution.Never)(src))

	assert.True(t, attribution.IsAmbient(yes, src))
	assert.False(t, attribution.IsAmbient(yes, nil))
	assert.False(t, attribution.IsAmbient(nil, src))
	assert.False(t, attribution.IsAmbient(boom, src))
}
