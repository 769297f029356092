package content_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-effects/internal/content"
	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

func TestLoadCatalogFile(t *testing.T) {
	catalog, err := content.LoadCatalogFile(filepath.Join("testdata", "effects.yaml"), effects.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, []string{"battle_cry", "hawk_eye_tonic", "healing_potion", "hearty_stew"}, catalog.Keys())

	potion, err := catalog.Get("healing_potion")
	require.NoError(t, err)
	assert.Equal(t, effects.Healing, potion.ID())
	assert.Equal(t, 10, potion.Healing())

	tonic, err := catalog.Get("hawk_eye_tonic")
	require.NoError(t, err)
	assert.Equal(t, 2, tonic.MaximumStack())

	_, err = catalog.Get("elixir")
	assert.True(t, dngerr.IsNotFound(err))
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{
			name:  "unknown effect",
			input: "effects:\n  - key: a\n    effect: NONEXISTENT\n",
			check: dngerr.IsUnknownEffect,
		},
		{
			name:  "bad parameter",
			input: "effects:\n  - key: a\n    effect: WELL_FED\n    parameters: [\"x\"]\n",
			check: dngerr.IsInvalidParameter,
		},
		{
			name:  "bad duration",
			input: "effects:\n  - key: a\n    effect: EXTRA_ATTACK\n    parameters: [\"3\", \"soon\"]\n",
			check: dngerr.IsDurationParse,
		},
		{
			name:  "duplicate key",
			input: "effects:\n  - key: a\n    effect: WELL_FED\n  - key: a\n    effect: WELL_FED\n",
			check: dngerr.IsInvalidArgument,
		},
		{
			name:  "missing key",
			input: "effects:\n  - effect: WELL_FED\n",
			check: dngerr.IsInvalidArgument,
		},
		{
			name:  "unknown field",
			input: "effects:\n  - key: a\n    effect: WELL_FED\n    power: 9000\n",
			check: dngerr.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.LoadCatalog(strings.NewReader(tt.input), effects.NewRegistry())
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestLoadCatalog_SkipInvalid(t *testing.T) {
	input := `
effects:
  - key: stew
    effect: WELL_FED
  - key: broken
    effect: HEALING
    parameters: ["lots"]
  - key: mystery
    effect: NONEXISTENT
`
	catalog, err := content.LoadCatalog(strings.NewReader(input), effects.NewRegistry(), content.WithSkipInvalid())
	require.NoError(t, err)
	assert.Equal(t, []string{"stew"}, catalog.Keys())
	assert.Equal(t, 1, catalog.Len())
}

func TestLoadCatalog_Empty(t *testing.T) {
	catalog, err := content.LoadCatalog(strings.NewReader(""), effects.NewRegistry())
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}
