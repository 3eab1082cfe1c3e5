package tui

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoders for DecodeConfig
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
)

const (
	maxPickerFiles   = 500
	pickerVisibleRow = 10
)

var errStopWalk = errors.New("stop walk")

type fileEntry struct {
	path string
	size int64
}

// filePicker lists files below a root directory that match the accepted
// doublestar patterns. Typing narrows the list by fuzzy match.
type filePicker struct {
	title      string
	entityType string
	root       string
	accept     []string
	maxBytes   int64
	multiple   bool

	filter  textinput.Model
	files   []fileEntry
	visible []int
	cursor  int
	chosen  map[int]bool
	scanned bool
	err     string
	h       Handlers
}

func newFilePicker(title, root string, accept []string, h Handlers) *filePicker {
	ti := textinput.New()
	ti.Prompt = styles.IconSearch + " "
	ti.Placeholder = "type to filter"
	ti.Width = 40
	ti.PromptStyle = styles.TextPrimaryStyle
	ti.Focus()

	return &filePicker{
		title:  title,
		root:   root,
		accept: accept,
		filter: ti,
		chosen: map[int]bool{},
		h:      h,
	}
}

func fileUploadRenderer(root string) func(modal.FileUploadProps, Handlers) Component {
	return func(p modal.FileUploadProps, h Handlers) Component {
		title := p.Title
		if title == "" {
			title = "Upload File"
		}
		fp := newFilePicker(title, root, p.Accept, h)
		fp.maxBytes = p.MaxBytes
		fp.multiple = p.Multiple
		return fp
	}
}

func dataImportRenderer(root string) func(modal.DataImportProps, Handlers) Component {
	return func(p modal.DataImportProps, h Handlers) Component {
		accept := p.Accept
		if len(accept) == 0 {
			accept = []string{"**/*.csv", "**/*.json", "**/*.yaml", "**/*.yml"}
		}
		fp := newFilePicker("Import "+p.EntityType, root, accept, h)
		fp.entityType = p.EntityType
		return fp
	}
}

func (p *filePicker) accepted(path string) bool {
	if len(p.accept) == 0 {
		return true
	}
	for _, pattern := range p.accept {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

func (p *filePicker) scan() {
	p.scanned = true
	fsys := os.DirFS(p.root)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !p.accepted(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		p.files = append(p.files, fileEntry{path: path, size: info.Size()})
		if len(p.files) >= maxPickerFiles {
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		p.err = err.Error()
	}
	p.applyFilter()
}

type fileNames []fileEntry

func (f fileNames) String(i int) string { return f[i].path }
func (f fileNames) Len() int            { return len(f) }

func (p *filePicker) applyFilter() {
	p.visible = p.visible[:0]
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		for i := range p.files {
			p.visible = append(p.visible, i)
		}
	} else {
		for _, m := range fuzzy.FindFrom(query, fileNames(p.files)) {
			p.visible = append(p.visible, m.Index)
		}
	}
	p.cursor = min(p.cursor, max(len(p.visible)-1, 0))
}

func (p *filePicker) Update(msg tea.Msg) tea.Cmd {
	if !p.scanned {
		p.scan()
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		return cmd
	}

	switch key.String() {
	case "down", "ctrl+n":
		p.cursor = min(p.cursor+1, max(len(p.visible)-1, 0))
		return nil
	case "up", "ctrl+p":
		p.cursor = max(p.cursor-1, 0)
		return nil
	case "tab":
		if p.multiple && len(p.visible) > 0 {
			i := p.visible[p.cursor]
			p.chosen[i] = !p.chosen[i]
		}
		return nil
	case "enter":
		p.submit()
		return nil
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.applyFilter()
	return cmd
}

// TakesText is always true, typing filters the list.
func (p *filePicker) TakesText() bool { return true }

func (p *filePicker) submit() {
	var picked []int
	for i := range p.files {
		if p.chosen[i] {
			picked = append(picked, i)
		}
	}
	if len(picked) == 0 && len(p.visible) > 0 {
		picked = []int{p.visible[p.cursor]}
	}
	if len(picked) == 0 {
		p.err = "no file selected"
		return
	}

	sel := FileSelection{EntityType: p.entityType}
	for _, i := range picked {
		f := p.files[i]
		if p.maxBytes > 0 && f.size > p.maxBytes {
			p.err = fmt.Sprintf("%s is %s, limit is %s", f.path, humanize.Bytes(uint64(f.size)), humanize.Bytes(uint64(p.maxBytes)))
			return
		}
		sel.Paths = append(sel.Paths, filepath.Join(p.root, filepath.FromSlash(f.path)))
		sel.Bytes += f.size
	}
	p.h.Confirm(sel)
}

func (p *filePicker) View(_, _ int) string {
	if !p.scanned {
		p.scan()
	}

	start := max(0, p.cursor-pickerVisibleRow+1)
	end := min(len(p.visible), start+pickerVisibleRow)

	rows := make([]string, 0, pickerVisibleRow)
	for vi := start; vi < end; vi++ {
		i := p.visible[vi]
		f := p.files[i]

		check := ""
		if p.multiple {
			check = "[ ] "
			if p.chosen[i] {
				check = "[x] "
			}
		}

		cursor := "  "
		name := styles.TextForegroundStyle.Render(f.path)
		if vi == p.cursor {
			cursor = "> "
			name = styles.SelectItemSelectedStyle.Render(f.path)
		}
		size := styles.TextMutedStyle.Render(humanize.Bytes(uint64(f.size)))
		rows = append(rows, cursor+check+name+"  "+size)
	}
	if len(rows) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("No matching files"))
	}

	parts := []string{
		styles.ModalTitleStyle.Render(styles.IconFolder + " " + p.title),
		styles.TextMutedStyle.Render(fmt.Sprintf("%s  (%d of %d)", p.root, len(p.visible), len(p.files))),
		"",
		p.filter.View(),
		"",
		strings.Join(rows, "\n"),
	}
	if p.err != "" {
		parts = append(parts, "", styles.TextErrorStyle.Render(p.err))
	}

	help := "↑/↓ move  enter choose  esc cancel"
	if p.multiple {
		help = "↑/↓ move  tab mark  enter choose  esc cancel"
	}
	parts = append(parts, styles.ModalHelpStyle.Render(help))

	return styles.ModalStyle.Width(70).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// imagePreview shows what can be known about an image in a terminal:
// its format, pixel size and file size.
type imagePreview struct {
	props modal.ImagePreviewProps
	lines []string
	h     Handlers
}

func renderImagePreview(p modal.ImagePreviewProps, h Handlers) Component {
	ip := &imagePreview{props: p, h: h}
	ip.lines = ip.describe()
	return ip
}

func (ip *imagePreview) describe() []string {
	info, err := os.Stat(ip.props.Path)
	if err != nil {
		return []string{styles.TextErrorStyle.Render(err.Error())}
	}

	lines := []string{
		styles.ModalLabelStyle.Render("Size") + " " + humanize.Bytes(uint64(info.Size())),
		styles.ModalLabelStyle.Render("Modified") + " " + humanize.Time(info.ModTime()),
	}

	f, err := os.Open(ip.props.Path)
	if err != nil {
		return append(lines, styles.TextErrorStyle.Render(err.Error()))
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return append(lines, styles.TextWarningStyle.Render("not a supported image: "+err.Error()))
	}
	return append(lines,
		styles.ModalLabelStyle.Render("Format")+" "+format,
		styles.ModalLabelStyle.Render("Pixels")+" "+fmt.Sprintf("%d x %d", cfg.Width, cfg.Height),
	)
}

func (ip *imagePreview) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		ip.h.Close()
	}
	return nil
}

func (ip *imagePreview) View(_, _ int) string {
	parts := []string{
		styles.ModalTitleStyle.Render(styles.IconFile + " " + filepath.Base(ip.props.Path)),
	}
	if ip.props.Caption != "" {
		parts = append(parts, styles.TextMutedStyle.Render(ip.props.Caption))
	}
	parts = append(parts, "")
	parts = append(parts, ip.lines...)
	parts = append(parts, "", styles.ModalHelpStyle.Render("enter/esc close"))
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

const (
	docModalMaxWidth  = 100
	docModalMaxHeight = 30
	docModalMargin    = 4
	docModalChrome    = 6
	docModalPadding   = 4
)

// documentViewer renders markdown with glamour in a scrollable viewport.
type documentViewer struct {
	props    modal.DocumentViewerProps
	viewport viewport.Model
	width    int
	logger   zerolog.Logger
	h        Handlers
}

func renderDocumentViewer(p modal.DocumentViewerProps, h Handlers) Component {
	return &documentViewer{props: p, h: h, logger: logging.Component("document-viewer")}
}

func docModalSize(width, height int) (int, int) {
	return max(min(width-docModalMargin, docModalMaxWidth), 20), max(min(height-docModalMargin, docModalMaxHeight), docModalChrome+1)
}

func (v *documentViewer) resize(width, height int) {
	if width == v.width && v.viewport.Height > 0 {
		return
	}
	modalWidth, modalHeight := docModalSize(width, height)
	v.viewport = viewport.New(modalWidth-docModalPadding, modalHeight-docModalChrome)
	v.width = width
	v.renderContent(modalWidth - docModalPadding)
}

func (v *documentViewer) renderContent(width int) {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		v.logger.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		v.viewport.SetContent(v.props.Markdown)
		return
	}

	rendered, err := renderer.Render(v.props.Markdown)
	if err != nil {
		v.logger.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		v.viewport.SetContent(v.props.Markdown)
		return
	}
	v.viewport.SetContent(strings.TrimSpace(rendered))
}

func (v *documentViewer) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", "q":
		v.h.Close()
	case "j", "down":
		v.viewport.ScrollDown(1)
	case "k", "up":
		v.viewport.ScrollUp(1)
	case "pgdown", " ":
		v.viewport.PageDown()
	case "pgup":
		v.viewport.PageUp()
	case "g":
		v.viewport.GotoTop()
	case "G":
		v.viewport.GotoBottom()
	}
	return nil
}

func (v *documentViewer) View(width, height int) string {
	v.resize(width, height)
	modalWidth, _ := docModalSize(width, height)

	title := v.props.Title
	if title == "" {
		title = "Document"
	}
	if v.viewport.TotalLineCount() > v.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", v.viewport.ScrollPercent()*100))
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		divider,
		v.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [g/G] top/bottom  [q/esc] close"),
	)
	return styles.ModalStyle.Width(modalWidth).Render(content)
}
