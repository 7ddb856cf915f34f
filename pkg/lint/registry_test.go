package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
)

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(identifierCheck(), fragileCheck())
	registry.RegisterAlias("S9000", "SL900")
	registry.RegisterAlias("S9999", "SL999")

	tests := []struct {
		name   string
		key    string
		wantID string
		wantOK bool
	}{
		{name: "by id", key: "SL900", wantID: "SL900", wantOK: true},
		{name: "by name", key: "fragile", wantID: "SL901", wantOK: true},
		{name: "by alias", key: "S9000", wantID: "SL900", wantOK: true},
		{name: "alias of unknown check", key: "S9999", wantOK: false},
		{name: "unknown", key: "nope", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			check, ok := registry.Get(tt.key)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, check.ID())
			}

			id, _, found := registry.Resolve(tt.key)
			assert.Equal(t, tt.wantOK, found)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRegistry_GetByID_IgnoresNames(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(identifierCheck())

	_, ok := registry.GetByID("every-identifier")
	assert.False(t, ok)

	check, ok := registry.GetByID("SL900")
	require.True(t, ok)
	assert.Equal(t, "every-identifier", check.Name())
}

func TestRegistry_ReplaceDropsOldName(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(identifierCheck())
	registry.Register(newTestCheck("SL900", "renamed", nil))

	_, ok := registry.Get("every-identifier")
	assert.False(t, ok)
	_, ok = registry.Get("renamed")
	assert.True(t, ok)
	assert.Len(t, registry.Checks(), 1)
}

func TestRegistry_SortedByID(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(fragileCheck(), parseErrorCheck(), identifierCheck())

	assert.Equal(t, []string{"SL900", "SL901", "SL902"}, registry.IDs())

	checks := registry.Checks()
	require.Len(t, checks, 3)
	assert.Equal(t, "SL900", checks[0].ID())
	assert.Equal(t, "SL902", checks[2].ID())
}

func TestRegistry_RuleInfos(t *testing.T) {
	t.Parallel()

	disabled := fragileCheck()
	disabled.enabled = false
	disabled.severity = config.SeverityError

	infos := newTestRegistry(identifierCheck(), disabled).RuleInfos()
	require.Len(t, infos, 2)

	assert.Equal(t, "SL900", infos[0].ID)
	assert.Equal(t, "every-identifier", infos[0].Name)
	assert.True(t, infos[0].Enabled)

	assert.Equal(t, "SL901", infos[1].ID)
	assert.False(t, infos[1].Enabled)
	assert.Equal(t, config.SeverityError, infos[1].Severity)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, lint.DefaultRegistry)
}

func TestRegistry_Aliases(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(identifierCheck())
	registry.RegisterAlias("S2", "SL900")
	registry.RegisterAlias("S1", "SL900")

	assert.Equal(t, []string{"S1", "S2"}, registry.Aliases("SL900"))
	assert.Empty(t, registry.Aliases("SL901"))
}
