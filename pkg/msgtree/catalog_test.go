package msgtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestFromMap_WellFormed tests construction from valid nested maps.
func TestFromMap_WellFormed(t *testing.T) {
	tests := []struct {
		name     string
		messages map[string]any
		leaves   int
	}{
		{
			name:     "flat leaves",
			messages: map[string]any{"yes": "Yes", "no": "No"},
			leaves:   2,
		},
		{
			name: "nested namespaces",
			messages: map[string]any{
				"nav": map[string]any{
					"home":  "Home",
					"about": "About us",
				},
				"footer": map[string]any{
					"legal": map[string]any{
						"terms": "Terms of service",
					},
				},
			},
			leaves: 3,
		},
		{
			name:     "empty namespace",
			messages: map[string]any{"empty": map[string]any{}},
			leaves:   0,
		},
		{
			name:     "empty map",
			messages: map[string]any{},
			leaves:   0,
		},
		{
			name:     "nil map",
			messages: nil,
			leaves:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := FromMap(tt.messages)
			require.NoError(t, err)
			require.NotNil(t, catalog)
			assert.Equal(t, tt.leaves, catalog.Len())
		})
	}
}

// TestFromMap_MalformedValues tests eager rejection of wrong types.
func TestFromMap_MalformedValues(t *testing.T) {
	tests := []struct {
		name     string
		messages map[string]any
		keyPath  string
	}{
		{
			name:     "int at root",
			messages: map[string]any{"count": 5},
			keyPath:  "count",
		},
		{
			name: "nil inside namespace",
			messages: map[string]any{
				"nav": map[string]any{"home": nil},
			},
			keyPath: "nav.home",
		},
		{
			name: "slice deep in tree",
			messages: map[string]any{
				"a": map[string]any{
					"b": map[string]any{"c": []string{"x"}},
				},
			},
			keyPath: "a.b.c",
		},
		{
			name:     "bool at root",
			messages: map[string]any{"flag": true},
			keyPath:  "flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := FromMap(tt.messages)
			require.Error(t, err)
			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, ErrMalformedCatalog)

			var malformed *MalformedValueError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.keyPath, malformed.KeyPath)
		})
	}
}

// TestFromMap_CyclicNamespace tests rejection of self-referencing maps.
func TestFromMap_CyclicNamespace(t *testing.T) {
	inner := map[string]any{"leaf": "value"}
	inner["self"] = inner

	catalog, err := FromMap(map[string]any{"outer": inner})
	require.Error(t, err)
	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, ErrCyclicCatalog)
}

// TestFromMap_SharedSubtree tests that the same map reused in two
// sibling positions is not mistaken for a cycle.
func TestFromMap_SharedSubtree(t *testing.T) {
	shared := map[string]any{"label": "Shared"}

	catalog, err := FromMap(map[string]any{
		"first":  shared,
		"second": shared,
	})
	require.NoError(t, err)

	msg, err := catalog.Resolve("first.label")
	require.NoError(t, err)
	assert.Equal(t, "Shared", msg)

	msg, err = catalog.Resolve("second.label")
	require.NoError(t, err)
	assert.Equal(t, "Shared", msg)
}

// TestFromMap_CopiesInput tests that later mutation of the source map
// does not leak into the catalog.
func TestFromMap_CopiesInput(t *testing.T) {
	source := map[string]any{
		"nav": map[string]any{"home": "Home"},
	}
	catalog, err := FromMap(source)
	require.NoError(t, err)

	source["nav"].(map[string]any)["home"] = "Mutated"
	source["extra"] = "Late addition"

	msg, err := catalog.Resolve("nav.home")
	require.NoError(t, err)
	assert.Equal(t, "Home", msg)
	assert.False(t, catalog.Has("extra"))
}

// TestMustFromMap tests the panicking constructor.
func TestMustFromMap(t *testing.T) {
	t.Run("valid input returns catalog", func(t *testing.T) {
		catalog := MustFromMap(map[string]any{"ok": "OK"})
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("malformed input panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustFromMap(map[string]any{"bad": 42})
		})
	})
}

// TestCatalog_Keys tests leaf enumeration.
func TestCatalog_Keys(t *testing.T) {
	catalog := MustFromMap(map[string]any{
		"nav": map[string]any{
			"home":  "Home",
			"about": "About",
		},
		"title": "Title",
		"empty": map[string]any{},
	})

	assert.Equal(t, []string{"nav.about", "nav.home", "title"}, catalog.Keys())
}

// TestCatalog_NilReceiver tests nil-catalog behavior.
func TestCatalog_NilReceiver(t *testing.T) {
	var catalog *Catalog

	assert.Equal(t, 0, catalog.Len())
	assert.Nil(t, catalog.Keys())

	_, err := catalog.Resolve("nav.home")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestFromMap_YAMLDecoded tests the intended caller-side flow: a
// catalog decoded from YAML by the caller, handed in as map[string]any.
func TestFromMap_YAMLDecoded(t *testing.T) {
	const source = `
nav:
  home: Home
  about: About us
greeting: "Hello {{name}}!"
`
	var messages map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(source), &messages))

	catalog, err := FromMap(messages)
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	msg, err := catalog.Resolve("nav.about")
	require.NoError(t, err)
	assert.Equal(t, "About us", msg)
}
