package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#83a598"), p.Primary)

	_, ok = GetPalette("nope")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("catppuccin")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Error, ColorError)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "#ffffff", 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 4))
	assert.Equal(t, lipgloss.Color("12"), Blend("12", "#ffffff", 0.5))
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, string(ColorForeground), *cfg.Document.Color)
}
