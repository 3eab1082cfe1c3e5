// Package printer writes styled command output for the CLI.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/campus/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines prefixed with a level icon.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle, styles.IconCheck, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle, styles.IconNotifyInfo, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle, styles.IconNotifyWarning, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle, styles.IconNotifyError, format, args...)
}

// Section writes a bold heading.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, lipgloss.NewStyle().Bold(true).Render(title))
}
