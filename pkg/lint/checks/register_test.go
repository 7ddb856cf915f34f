package checks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)

	ids := registry.IDs()
	require.Len(t, ids, 28)
	for i := 100; i <= 127; i++ {
		id := fmt.Sprintf("SL%d", i)
		check, ok := registry.GetByID(id)
		require.True(t, ok, "missing %s", id)
		assert.NotEmpty(t, check.Name(), id)
		assert.NotEmpty(t, check.Description(), id)
		assert.NotEmpty(t, check.Tags(), id)
	}

	names := make(map[string]string)
	for _, check := range registry.Checks() {
		previous, duplicated := names[check.Name()]
		assert.False(t, duplicated, "%s and %s share a name", previous, check.ID())
		names[check.Name()] = check.ID()
	}
}

func TestRegisterAliases(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)
	RegisterAliases(registry)

	tests := []struct {
		key    string
		wantID string
	}{
		{key: "S3776", wantID: "SL101"},
		{key: "S1192", wantID: "SL106"},
		{key: "S1144", wantID: "SL127"},
		{key: "cognitive-complexity", wantID: "SL101"},
		{key: "SL122", wantID: "SL122"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			check, ok := registry.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, check.ID())
		})
	}

	for alias, id := range sonarKeys {
		assert.Contains(t, registry.Aliases(id), alias)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	for _, check := range lint.DefaultRegistry.Checks() {
		assert.Equal(t, check.ID() != "SL122", check.DefaultEnabled(), check.ID())
	}
	_, ok := lint.DefaultRegistry.Get("S2260")
	assert.True(t, ok)
}
