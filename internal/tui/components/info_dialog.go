package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

const (
	infoModalMaxHeight = 30
	infoModalMargin    = 4
	infoModalChrome    = 6 // title + divider + help + spacing
	infoModalMinWidth  = 50
)

// InfoStatus represents the status of an info item.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups related info items under a section title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog displays read-only records as labeled rows in a scrollable
// viewport. Detail, receipt, report and timetable modals all use it.
type InfoDialog struct {
	title    string
	sections []InfoSection
	footer   string
	helpText string
	viewport viewport.Model
	width    int
}

// NewInfoDialog creates a new info dialog sized for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, footer, helpText string, width, height int) *InfoDialog {
	d := &InfoDialog{
		title:    title,
		sections: sections,
		footer:   footer,
		helpText: helpText,
	}
	d.Resize(width, height)
	return d
}

func infoModalSize(width, height int) (int, int) {
	w := min(max(int(float64(width)*0.65), infoModalMinWidth), width-infoModalMargin)
	h := min(height-infoModalMargin, infoModalMaxHeight)
	return max(w, 20), max(h, infoModalChrome+1)
}

// Resize fits the viewport to a new screen size.
func (d *InfoDialog) Resize(width, height int) {
	if width == d.width && d.viewport.Height > 0 {
		return
	}
	modalWidth, modalHeight := infoModalSize(width, height)
	offset := d.viewport.YOffset
	d.viewport = viewport.New(modalWidth-4, modalHeight-infoModalChrome)
	d.viewport.SetContent(d.renderContent(modalWidth))
	d.viewport.SetYOffset(offset)
	d.width = width
}

func (d *InfoDialog) renderContent(modalWidth int) string {
	separator := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	lines := make([]string, 0)

	for i, section := range d.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
			lines = append(lines, separator)
		}
		if len(section.Items) == 0 {
			lines = append(lines, styles.TextMutedStyle.Render("none"))
		}
		for _, item := range section.Items {
			lines = append(lines, formatInfoItem(item))
		}
	}

	if d.footer != "" {
		lines = append(lines, "", d.footer)
	}

	return strings.Join(lines, "\n")
}

func formatInfoItem(item InfoItem) string {
	label := styles.ModalLabelStyle.Render(item.Label)
	value := styles.ModalValueStyle.Render(item.Value)

	if icon := statusIcon(item.Status); icon != "" {
		return fmt.Sprintf("%s %s %s", icon, label, value)
	}
	return label + " " + value
}

func statusIcon(s InfoStatus) string {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔")
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●")
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘")
	default:
		return ""
	}
}

// Update scrolls the viewport.
func (d *InfoDialog) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		d.viewport.ScrollDown(1)
	case "k", "up":
		d.viewport.ScrollUp(1)
	case "pgdown", " ":
		d.viewport.PageDown()
	case "pgup":
		d.viewport.PageUp()
	case "g", "home":
		d.viewport.GotoTop()
	case "G", "end":
		d.viewport.GotoBottom()
	}
}

// View renders the dialog box.
func (d *InfoDialog) View(width, height int) string {
	d.Resize(width, height)
	modalWidth, modalHeight := infoModalSize(width, height)

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title+scrollInfo),
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	return styles.ModalStyle.
		Width(modalWidth).
		MaxHeight(modalHeight + 2).
		Render(content)
}
