// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Dashboard.
	HeaderStyle      lipgloss.Style
	TableHeaderStyle lipgloss.Style
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	StatusBarStyle   lipgloss.Style
	KeyStyle         lipgloss.Style

	// Modals.
	ModalStyle               lipgloss.Style
	ModalDangerStyle         lipgloss.Style
	ModalWarningStyle        lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style
	ModalButtonDangerStyle   lipgloss.Style
	ModalLabelStyle          lipgloss.Style
	ModalValueStyle          lipgloss.Style
	FallbackStyle            lipgloss.Style
	HelpDialogSectionStyle   lipgloss.Style
	SelectItemSelectedStyle  lipgloss.Style

	// Notices.
	ToastSuccessStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	// Forms.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingBottom(1)
	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true)
	RowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingTop(1)
	KeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalDangerStyle = ModalStyle.
		BorderForeground(ColorError)
	ModalWarningStyle = ModalStyle.
		BorderForeground(ColorWarning)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ModalButtonDangerStyle = ModalButtonSelectedStyle.
		Background(ColorError)
	ModalLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(14)
	ModalValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	FallbackStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorWarning).
		Foreground(ColorWarning).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	SelectItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ToastSuccessStyle = toastStyle(p.Success)
	ToastInfoStyle = toastStyle(p.Primary)
	ToastWarningStyle = toastStyle(p.Warning)
	ToastErrorStyle = toastStyle(p.Error)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// toastStyle tints the surface color toward accent so notices of each
// level stay readable on both light and dark palettes.
func toastStyle(accent lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(ColorForeground).
		Background(Blend(ColorSurface, accent, 0.15)).
		Padding(0, 1)
}

// Blend mixes a toward b in Lab space. t is clamped to [0, 1]. Colors that
// are not hex strings are returned unchanged.
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return a
	}
	t = min(max(t, 0), 1)
	return lipgloss.Color(ca.BlendLab(cb, t).Clamped().Hex())
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
