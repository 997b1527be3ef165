package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cardfit/pkg/card"
	"github.com/dkoosis/cardfit/pkg/textlayout"
)

func TestResolve_AppliesPriority(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		flags       CliFlags
		wantWidth   int
		wantSource  string
		wantNoColor bool
		wantColorBy string
	}{
		{
			name:        "file values when nothing overrides",
			wantWidth:   DefaultCardWidth,
			wantSource:  "file",
			wantColorBy: "file",
		},
		{
			name:        "env overrides file",
			env:         map[string]string{"CARDFIT_CARD_WIDTH": "72", "NO_COLOR": "1"},
			wantWidth:   72,
			wantSource:  "env",
			wantNoColor: true,
			wantColorBy: "env",
		},
		{
			name:        "cardfit variable wins over NO_COLOR",
			env:         map[string]string{"CARDFIT_NO_COLOR": "false", "NO_COLOR": "1"},
			wantWidth:   DefaultCardWidth,
			wantSource:  "file",
			wantNoColor: false,
			wantColorBy: "env",
		},
		{
			name:        "cli overrides env",
			env:         map[string]string{"CARDFIT_CARD_WIDTH": "72", "NO_COLOR": "1"},
			flags:       CliFlags{Width: 30, WidthSet: true, NoColor: false, NoColorSet: true},
			wantWidth:   30,
			wantSource:  "cli",
			wantNoColor: false,
			wantColorBy: "cli",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Resolve(Default(), tt.flags)

			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, got.Width)
			assert.Equal(t, tt.wantSource, got.WidthSource)
			assert.Equal(t, tt.wantNoColor, got.NoColor)
			assert.Equal(t, tt.wantColorBy, got.NoColorSource)
		})
	}
}

func TestResolve_ReturnsError_When_WidthInvalid(t *testing.T) {
	isolate(t)

	_, err := Resolve(Default(), CliFlags{Width: 0, WidthSet: true})
	require.Error(t, err)

	t.Setenv("CARDFIT_CARD_WIDTH", "wide")
	_, err = Resolve(Default(), CliFlags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CARDFIT_CARD_WIDTH")
}

func TestResolvedConfig_Env_CarriesMetricsAndTheme(t *testing.T) {
	isolate(t)
	app := Default()
	app.Metrics.LineHeight = 30
	app.Badge.Margin = 4

	resolved, err := Resolve(app, CliFlags{NoColor: true, NoColorSet: true})
	require.NoError(t, err)
	env := resolved.Env()

	assert.Equal(t, textlayout.CellFont{CellWidth: 8, RowHeight: 30}, env.Font)
	assert.Equal(t, 4.0, env.BadgeMargin)
	assert.Equal(t, card.MonochromeTheme().Icons, env.Theme.Icons)
	assert.Equal(t, 24.0, env.BadgeWidth(card.NewBadge(5)), "badge renders three cells wide")
}
