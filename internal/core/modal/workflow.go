package modal

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/notify"
)

// DefaultNoticeDuration is used when no duration is configured.
const DefaultNoticeDuration = 5 * time.Second

// Defaults holds the caller-overridable texts and timings used by the
// workflow helpers.
type Defaults struct {
	NoticeDuration    time.Duration
	ConfirmTitle      string
	ConfirmText       string
	CancelText        string
	DeleteTitle       string
	DeleteConfirmText string
	ErrorTitle        string
}

// DefaultDefaults returns the built-in texts.
func DefaultDefaults() Defaults {
	return Defaults{
		NoticeDuration:    DefaultNoticeDuration,
		ConfirmTitle:      "Confirm Action",
		ConfirmText:       "Confirm",
		CancelText:        "Cancel",
		DeleteTitle:       "Confirm Delete",
		DeleteConfirmText: "Delete",
		ErrorTitle:        "Error",
	}
}

// Publisher receives a copy of every notice shown, for history.
type Publisher interface {
	Publish(n notify.Notification)
}

// Dismissal identifies a notice and when it should be dismissed
// automatically. After is zero for notices that stay until closed.
type Dismissal struct {
	ID    EntryID
	After time.Duration
}

// Auto reports whether the notice should be closed by a timer.
func (d Dismissal) Auto() bool {
	return d.ID != "" && d.After > 0
}

// Workflows bundles the higher level confirm and notify helpers built on
// top of a Manager.
type Workflows struct {
	m        *Manager
	defaults Defaults
	pub      Publisher
	logger   zerolog.Logger
}

// NewWorkflows returns helpers bound to m. pub may be nil.
func NewWorkflows(m *Manager, defaults Defaults, pub Publisher, logger zerolog.Logger) *Workflows {
	if defaults.NoticeDuration < 0 {
		defaults.NoticeDuration = 0
	}
	return &Workflows{
		m:        m,
		defaults: defaults,
		pub:      pub,
		logger:   logger,
	}
}

// Manager returns the stack the helpers operate on.
func (w *Workflows) Manager() *Manager { return w.m }

type confirmConfig struct {
	title       string
	message     string
	confirmText string
	cancelText  string
	variant     Variant
}

// ConfirmOption overrides a default text of a confirmation.
type ConfirmOption func(*confirmConfig)

func WithTitle(title string) ConfirmOption {
	return func(c *confirmConfig) { c.title = title }
}

// WithMessage replaces the generated message of ConfirmDelete.
func WithMessage(message string) ConfirmOption {
	return func(c *confirmConfig) { c.message = message }
}

func WithConfirmText(text string) ConfirmOption {
	return func(c *confirmConfig) { c.confirmText = text }
}

func WithCancelText(text string) ConfirmOption {
	return func(c *confirmConfig) { c.cancelText = text }
}

func WithVariant(v Variant) ConfirmOption {
	return func(c *confirmConfig) { c.variant = v }
}

// Confirm opens a confirmation dialog and returns its pending result.
// Confirming settles Confirmed, any dismissal settles Cancelled.
func (w *Workflows) Confirm(message string, opts ...ConfirmOption) *Pending {
	cfg := confirmConfig{
		title:       w.defaults.ConfirmTitle,
		message:     message,
		confirmText: w.defaults.ConfirmText,
		cancelText:  w.defaults.CancelText,
		variant:     VariantInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newPending()
	p.id = w.m.Open(ConfirmProps{
		Title:       cfg.title,
		Message:     cfg.message,
		ConfirmText: cfg.confirmText,
		CancelText:  cfg.cancelText,
		Variant:     cfg.variant,
	}, settleOptions(p)...)
	return p
}

// ConfirmDelete opens the delete-flavored confirmation for one entity.
func (w *Workflows) ConfirmDelete(entityName, entityType string, opts ...ConfirmOption) *Pending {
	cfg := confirmConfig{
		title: w.defaults.DeleteTitle,
		message: fmt.Sprintf(
			"Are you sure you want to delete %s %q? This action cannot be undone.",
			entityType, entityName,
		),
		confirmText: w.defaults.DeleteConfirmText,
		cancelText:  w.defaults.CancelText,
		variant:     VariantDanger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newPending()
	p.id = w.m.Open(DeleteConfirmProps{
		EntityName:  entityName,
		EntityType:  entityType,
		Title:       cfg.title,
		Message:     cfg.message,
		ConfirmText: cfg.confirmText,
		CancelText:  cfg.cancelText,
	}, settleOptions(p)...)
	return p
}

func settleOptions(p *Pending) []OpenOption {
	return []OpenOption{
		WithOnConfirm(func(any) { p.settle(Confirmed) }),
		WithOnClose(func() { p.settle(Cancelled) }),
	}
}

type notifyConfig struct {
	duration    time.Duration
	hasDuration bool
}

// NotifyOption configures a notice.
type NotifyOption func(*notifyConfig)

// WithDuration sets the auto-dismiss delay. Zero keeps the notice open
// until it is dismissed.
func WithDuration(d time.Duration) NotifyOption {
	return func(c *notifyConfig) {
		c.duration = max(d, 0)
		c.hasDuration = true
	}
}

func (w *Workflows) ShowSuccess(title, message string, opts ...NotifyOption) Dismissal {
	return w.show(KindSuccess, title, message, opts)
}

func (w *Workflows) ShowError(title, message string, opts ...NotifyOption) Dismissal {
	return w.show(KindError, title, message, opts)
}

func (w *Workflows) ShowWarning(title, message string, opts ...NotifyOption) Dismissal {
	return w.show(KindWarning, title, message, opts)
}

func (w *Workflows) ShowInfo(title, message string, opts ...NotifyOption) Dismissal {
	return w.show(KindInfo, title, message, opts)
}

func (w *Workflows) show(kind Kind, title, message string, opts []NotifyOption) Dismissal {
	cfg := notifyConfig{duration: w.defaults.NoticeDuration}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := Notice{Title: title, Message: message, Duration: cfg.duration}

	var props Props
	switch kind { //nolint:exhaustive // only notice kinds are passed in
	case KindSuccess:
		props = SuccessNotice{n}
	case KindError:
		props = ErrorNotice{n}
	case KindWarning:
		props = WarningNotice{n}
	default:
		props = InfoNotice{n}
	}

	id := w.m.Open(props)

	if w.pub != nil {
		w.pub.Publish(notify.Notification{
			Level:   kind.Level(),
			Title:   title,
			Message: message,
		})
	}

	return Dismissal{ID: id, After: cfg.duration}
}

// Expire is the timer half of a notice's dismissal. It closes the notice
// if it is still on the stack and reports whether it did, so a manual
// dismissal that happened first turns the timer into a no-op.
func (w *Workflows) Expire(d Dismissal) bool {
	if d.ID == "" {
		return false
	}
	return w.m.CloseEntry(d.ID)
}

// Action is a caller-supplied operation run by a workflow helper, such as
// saving a form or deleting a record.
type Action func(ctx context.Context) error

// Safely runs action and converts a panic into an error.
func Safely(ctx context.Context, action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return action(ctx)
}

type reportConfig struct {
	successTitle   string
	successMessage string
	errorTitle     string
	name           string
	entryID        EntryID
}

// ReportOption configures how an action outcome is surfaced.
type ReportOption func(*reportConfig)

// WithSuccess shows a success notice when the action succeeds.
func WithSuccess(title, message string) ReportOption {
	return func(c *reportConfig) {
		c.successTitle = title
		c.successMessage = message
	}
}

// WithErrorTitle overrides the title of the failure notice.
func WithErrorTitle(title string) ReportOption {
	return func(c *reportConfig) { c.errorTitle = title }
}

// WithActionName names the action in logs.
func WithActionName(name string) ReportOption {
	return func(c *reportConfig) { c.name = name }
}

// WithEntry ties the action to the modal entry that started it, so its
// log events carry entry_id.
func WithEntry(id EntryID) ReportOption {
	return func(c *reportConfig) { c.entryID = id }
}

// Report surfaces the outcome of an action. A failure becomes an error
// notice carrying the error message and Report returns false; it never
// propagates the error further.
func (w *Workflows) Report(err error, opts ...ReportOption) (bool, Dismissal) {
	cfg := reportConfig{errorTitle: w.defaults.ErrorTitle}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err != nil {
		w.logger.Warn().
			Err(err).
			Str("action", cfg.name).
			Msg("workflow action failed")
		return false, w.ShowError(cfg.errorTitle, err.Error())
	}

	if cfg.successTitle == "" && cfg.successMessage == "" {
		return true, Dismissal{}
	}
	return true, w.ShowSuccess(cfg.successTitle, cfg.successMessage)
}

// Attempt runs action synchronously and reports its outcome.
func (w *Workflows) Attempt(ctx context.Context, action Action, opts ...ReportOption) (bool, Dismissal) {
	var cfg reportConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name != "" {
		ctx = logging.WithAction(ctx, cfg.name)
	}
	if cfg.entryID != "" {
		ctx = logging.WithEntryID(ctx, string(cfg.entryID))
	}

	err := Safely(ctx, action)
	if err != nil {
		w.logger.Debug().Ctx(ctx).Err(err).Msg("attempt failed")
	}
	return w.Report(err, opts...)
}
