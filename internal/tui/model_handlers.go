package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/core/styles"
)

var (
	feeMethods     = []string{"cash", "bank", "mobile"}
	audiences      = []string{"Parents", "Teachers", "Students"}
	studentStatus  = []string{string(school.StatusActive), string(school.StatusSuspended), string(school.StatusGraduated)}
	uploadPatterns = []string{"**/*.pdf", "**/*.png", "**/*.jpg", "**/*.jpeg", "**/*.docx"}
)

const (
	uploadMaxBytes = 10 << 20
	examLength     = 2 * time.Hour
)

// submittedMsg carries the payload of a confirmed form or picker into
// Update.
type submittedMsg struct {
	payload any
}

// confirmResultMsg is produced once a confirmation dialog settles.
type confirmResultMsg struct {
	result modal.Result
	err    error
	action modal.Action
	opts   []modal.ReportOption
}

// importParsedMsg is the first half of an import: files read and parsed,
// records not yet added.
type importParsedMsg struct {
	loadingID modal.EntryID
	students  []school.Student
	err       error
}

// actionResultMsg reports a background action back to Update.
type actionResultMsg struct {
	loadingID modal.EntryID
	err       error
	opts      []modal.ReportOption
}

// submit returns the option that hands a confirmed payload to Update.
// Callbacks run inside Update and cannot return commands, so the message
// goes through the deferred queue.
func (m Model) submit() modal.OpenOption {
	mm := m.modals
	return modal.WithOnConfirm(func(payload any) {
		mm.Defer(func() tea.Msg { return submittedMsg{payload: payload} })
	})
}

// awaitConfirm waits for p in the background and runs action in Update if
// the user confirmed.
func (m Model) awaitConfirm(p *modal.Pending, action modal.Action, opts ...modal.ReportOption) tea.Cmd {
	ctx := m.ctx
	opts = append(opts, modal.WithEntry(p.ID()))
	return func() tea.Msg {
		r, err := p.Wait(ctx)
		return confirmResultMsg{result: r, err: err, action: action, opts: opts}
	}
}

// runInBackground runs action on a command goroutine and reports it,
// closing the loading modal identified by loadingID when done.
func (m Model) runInBackground(loadingID modal.EntryID, name string, action modal.Action, opts ...modal.ReportOption) tea.Cmd {
	ctx := logging.WithAction(m.ctx, name)
	return func() tea.Msg {
		err := modal.Safely(ctx, action)
		return actionResultMsg{loadingID: loadingID, err: err, opts: opts}
	}
}

func (m Model) openForKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Help):
		m.stack.Open(m.keys.HelpProps(m.cfg.CancelKey))
	case key.Matches(msg, k.History):
		m.stack.Open(modal.NotificationHistoryProps{})
	case key.Matches(msg, k.Search):
		m.stack.Open(modal.AdvancedSearchProps{}, m.submit())
	case key.Matches(msg, k.Filter):
		m.stack.Open(modal.FilterProps{Field: "Status", Options: studentStatus, Selected: m.statusFilter}, m.submit())
	case key.Matches(msg, k.Open):
		m.openDetail()
	case key.Matches(msg, k.Logout):
		mm := m.modals
		m.stack.Open(modal.LogoutConfirmProps{UserName: m.user.Name}, modal.WithOnConfirm(func(any) {
			mm.Defer(tea.Quit)
		}))
	case key.Matches(msg, k.Account):
		m.stack.Open(modal.UserDetailProps{UserID: m.user.ID, Name: m.user.Name, Role: m.user.Role, Email: m.user.Email})
	case key.Matches(msg, k.Settings):
		m.stack.Open(modal.SettingsProps{Theme: m.user.Theme, Themes: styles.ThemeNames()}, m.submit())
	case key.Matches(msg, k.Profile):
		m.stack.Open(modal.ProfileSettingsProps{Name: m.user.Name, Email: m.user.Email, Phone: m.user.Phone}, m.submit())
	case key.Matches(msg, k.Password):
		m.stack.Open(modal.ChangePasswordProps{UserID: m.user.ID}, m.submit())
	case key.Matches(msg, k.NotifyPref):
		m.stack.Open(modal.NotificationSettingsProps{Channels: m.user.Channels, Enabled: m.user.Enabled}, m.submit())

	case key.Matches(msg, k.AddStudent):
		m.stack.Open(modal.StudentFormProps{Classes: m.classes}, m.submit())
	case key.Matches(msg, k.EditStudent):
		if s, ok := m.selectedStudent(); ok {
			m.stack.Open(modal.StudentFormProps{Student: &s, Classes: m.classes}, m.submit())
		}
	case key.Matches(msg, k.Delete):
		return m.confirmDelete()
	case key.Matches(msg, k.AddTeacher):
		m.stack.Open(modal.TeacherFormProps{Subjects: m.dir.Subjects()}, m.submit())
	case key.Matches(msg, k.AddClass):
		m.stack.Open(modal.ClassFormProps{Teachers: m.dir.Teachers()}, m.submit())
	case key.Matches(msg, k.AddSubject):
		m.stack.Open(modal.SubjectFormProps{}, m.submit())
	case key.Matches(msg, k.Teacher):
		m.openClassTeacher()

	case key.Matches(msg, k.CollectFee):
		if s, ok := m.selectedStudent(); ok {
			m.stack.Open(modal.FeeCollectionProps{Student: s, Outstanding: m.dir.Outstanding(s.ID), Methods: feeMethods}, m.submit())
		}
	case key.Matches(msg, k.Receipt):
		return m.openLastReceipt()
	case key.Matches(msg, k.FeeStructure):
		items := m.dir.FeeStructure("")
		term := ""
		if len(items) > 0 {
			term = items[0].Term
		}
		m.stack.Open(modal.FeeStructureProps{Term: term, Items: m.dir.FeeStructure(term)})

	case key.Matches(msg, k.MarkAttendance):
		if c, ok := m.selectedClass(); ok {
			students := m.dir.Students(school.StudentQuery{ClassID: c.ID, Status: school.StatusActive}).Items
			m.stack.Open(modal.MarkAttendanceProps{Class: c, Date: time.Now(), Students: students}, m.submit())
		}
	case key.Matches(msg, k.Report):
		if c, ok := m.selectedClass(); ok {
			m.stack.Open(modal.AttendanceReportProps{Class: c, Summary: m.dir.AttendanceSummary(c.ID)})
		}
	case key.Matches(msg, k.Timetable):
		if c, ok := m.selectedClass(); ok {
			m.stack.Open(modal.TimetableProps{
				Class:    c,
				Slots:    m.dir.Timetable(c.ID),
				Subjects: m.dir.Subjects(),
				Teachers: m.dir.Teachers(),
			})
		}
	case key.Matches(msg, k.Schedule):
		if c, ok := m.selectedClass(); ok {
			m.stack.Open(modal.ScheduleClassProps{Class: c, Subjects: m.dir.Subjects(), Teachers: m.dir.Teachers()}, m.submit())
		}
	case key.Matches(msg, k.Calendar):
		day := time.Now()
		if e, ok := m.selectedEvent(); ok {
			day = e.Start
		}
		m.stack.Open(modal.CalendarDayProps{Date: day, Events: m.dir.EventsOn(day)})
	case key.Matches(msg, k.AddEvent):
		m.stack.Open(modal.EventFormProps{Date: time.Now(), Classes: m.classes}, m.submit())
	case key.Matches(msg, k.Exam):
		if c, ok := m.selectedClass(); ok {
			m.stack.Open(modal.ExamFormProps{ClassID: c.ID, Subjects: m.dir.Subjects(), Date: time.Now().AddDate(0, 0, 7)}, m.submit())
		}
	case key.Matches(msg, k.Announce):
		m.stack.Open(modal.AnnouncementFormProps{Audience: audiences}, m.submit())

	case key.Matches(msg, k.Upload):
		m.stack.Open(modal.FileUploadProps{Title: "Attach Documents", Accept: uploadPatterns, MaxBytes: uploadMaxBytes, Multiple: true}, m.submit())
	case key.Matches(msg, k.Import):
		m.stack.Open(modal.DataImportProps{EntityType: "students", Accept: []string{"**/*.csv"}}, m.submit())
	case key.Matches(msg, k.Export):
		m.stack.Open(modal.DataExportProps{EntityType: "students"}, m.submit())
	case key.Matches(msg, k.Photo):
		if s, ok := m.selectedStudent(); ok {
			m.stack.Open(modal.ImagePreviewProps{
				Path:    filepath.Join(m.cfg.FileRoot, "photos", s.ID+".png"),
				Caption: s.FullName(),
			})
		}
	case key.Matches(msg, k.Handbook):
		m.stack.Open(modal.DocumentViewerProps{Title: "Handbook", Markdown: handbook})
	}
	return nil
}

// openDetail shows the record under the cursor.
func (m Model) openDetail() {
	switch m.view {
	case ViewStudents:
		if s, ok := m.selectedStudent(); ok {
			m.openStudent(s.ID)
		}
	case ViewClasses:
		if c, ok := m.selectedClass(); ok {
			m.openClass(c.ID)
		}
	case ViewEvents:
		if e, ok := m.selectedEvent(); ok {
			m.stack.Open(modal.EventDetailProps{Event: e})
		}
	}
}

func (m Model) openStudent(id string) {
	s, err := m.dir.Student(id)
	if err != nil {
		m.logger.Warn().Err(err).Str("student_id", id).Msg("open student")
		return
	}
	className := s.ClassID
	if c, err := m.dir.Class(s.ClassID); err == nil {
		className = c.Name
	}
	m.stack.Open(modal.StudentDetailProps{Student: s, ClassName: className, Balance: m.dir.Outstanding(s.ID)})
}

func (m Model) openClass(id string) {
	c, err := m.dir.Class(id)
	if err != nil {
		m.logger.Warn().Err(err).Str("class_id", id).Msg("open class")
		return
	}
	teacher := c.TeacherID
	if t, err := m.dir.Teacher(c.TeacherID); err == nil {
		teacher = t.Name
	}
	m.stack.Open(modal.ClassDetailProps{
		Class:    c,
		Teacher:  teacher,
		Students: m.dir.Students(school.StudentQuery{ClassID: c.ID, Sort: school.SortByName}).Items,
	})
}

func (m Model) openTeacher(id string) {
	t, err := m.dir.Teacher(id)
	if err != nil {
		m.logger.Warn().Err(err).Str("teacher_id", id).Msg("open teacher")
		return
	}
	m.stack.Open(modal.TeacherDetailProps{Teacher: t, Classes: m.dir.TeacherClasses(t.ID)})
}

func (m Model) openClassTeacher() {
	if c, ok := m.selectedClass(); ok {
		m.openTeacher(c.TeacherID)
	}
}

func (m Model) openLastReceipt() tea.Cmd {
	s, ok := m.selectedStudent()
	if !ok {
		return nil
	}
	payments := m.dir.Payments(s.ID)
	if len(payments) == 0 {
		return scheduleDismiss(m.flows.ShowInfo("No payments", s.FullName()+" has no recorded payments."))
	}
	m.stack.Open(modal.FeeReceiptProps{Payment: payments[len(payments)-1], Student: s})
	return nil
}

func (m Model) confirmDelete() tea.Cmd {
	s, ok := m.selectedStudent()
	if !ok {
		return nil
	}
	dir := m.dir
	p := m.flows.ConfirmDelete(s.FullName(), "student")
	return m.awaitConfirm(p,
		func(context.Context) error { return dir.DeleteStudent(s.ID) },
		modal.WithSuccess("Student deleted", s.FullName()+" was removed."),
		modal.WithErrorTitle("Delete failed"),
		modal.WithActionName("delete-student"),
	)
}

func (m Model) handleConfirmResult(msg confirmResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Msg("confirmation abandoned")
		return m, nil
	}
	if msg.result != modal.Confirmed || msg.action == nil {
		return m, nil
	}

	_, d := m.flows.Attempt(m.ctx, msg.action, msg.opts...)
	m.refresh()
	return m, scheduleDismiss(d)
}

// handleSubmitted applies a confirmed payload. Directory writes are quick
// and run inline through Attempt; file work goes to the background behind
// a loading modal.
func (m Model) handleSubmitted(msg submittedMsg) (Model, tea.Cmd) {
	dir := m.dir
	var (
		action modal.Action
		opts   []modal.ReportOption
		after  func()
	)

	switch p := msg.payload.(type) {
	case school.Student:
		if p.ID == "" {
			action = func(context.Context) error { _, err := dir.AddStudent(p); return err }
			opts = append(opts, modal.WithSuccess("Student added", p.FullName()+" was enrolled."))
		} else {
			action = func(context.Context) error { return dir.UpdateStudent(p) }
			opts = append(opts, modal.WithSuccess("Student updated", p.FullName()))
		}
	case school.Teacher:
		action = func(context.Context) error { _, err := dir.AddTeacher(p); return err }
		opts = append(opts, modal.WithSuccess("Teacher added", p.Name))
	case school.Class:
		action = func(context.Context) error { _, err := dir.AddClass(p); return err }
		opts = append(opts, modal.WithSuccess("Class added", p.Name))
	case school.Subject:
		action = func(context.Context) error { _, err := dir.AddSubject(p); return err }
		opts = append(opts, modal.WithSuccess("Subject added", p.Name))
	case school.Payment:
		var saved school.Payment
		action = func(context.Context) (err error) { saved, err = dir.RecordPayment(p); return err }
		after = func() {
			if s, err := dir.Student(saved.StudentID); err == nil {
				m.stack.Open(modal.FeeReceiptProps{Payment: saved, Student: s})
			}
		}
	case school.Event:
		action = func(context.Context) error { _, err := dir.AddEvent(p); return err }
		opts = append(opts, modal.WithSuccess("Event added", p.Title))
	case school.TimetableSlot:
		action = func(context.Context) error { return dir.AddSlot(p) }
		opts = append(opts, modal.WithSuccess("Lesson scheduled", fmt.Sprintf("%s %s", p.Day, p.Start)))
	case AttendanceMarks:
		action = func(context.Context) error { return dir.MarkAttendance(p.ClassID, p.Date, p.Marks) }
		opts = append(opts, modal.WithSuccess("Attendance saved", fmt.Sprintf("%d students marked", len(p.Marks))))
	case ExamDraft:
		action = func(context.Context) error {
			_, err := dir.AddEvent(school.Event{
				Title:       "Exam: " + p.Title,
				Description: fmt.Sprintf("Maximum score %d.", p.MaxScore),
				ClassID:     p.ClassID,
				Start:       p.Date,
				End:         p.Date.Add(examLength),
			})
			return err
		}
		opts = append(opts, modal.WithSuccess("Exam scheduled", p.Title))
	case Announcement:
		action = func(context.Context) error { return nil }
		opts = append(opts, modal.WithSuccess(p.Title, "Sent to "+strings.Join(p.Audience, ", ")))
	case ProfileUpdate:
		user := m.user
		action = func(context.Context) error {
			user.Name, user.Email, user.Phone = p.Name, p.Email, p.Phone
			return nil
		}
		opts = append(opts, modal.WithSuccess("Profile saved", p.Name))
	case PasswordChange:
		user := m.user
		action = func(context.Context) error {
			if p.Current != user.password {
				return errors.New("current password is incorrect")
			}
			user.password = p.New
			return nil
		}
		opts = append(opts, modal.WithSuccess("Password changed", ""), modal.WithErrorTitle("Password not changed"))
	case NotificationPrefs:
		m.user.Enabled = p.Enabled
		action = func(context.Context) error { return nil }
		opts = append(opts, modal.WithSuccess("Notification settings saved", ""))
	case ThemeChoice:
		user := m.user
		action = func(context.Context) error {
			palette, ok := styles.GetPalette(p.Theme)
			if !ok {
				return fmt.Errorf("unknown theme %q", p.Theme)
			}
			styles.SetTheme(palette)
			user.Theme = p.Theme
			return nil
		}
		opts = append(opts, modal.WithSuccess("Theme changed", p.Theme))
	case FilterSelection:
		m.statusFilter = p.Selected
		m.refresh()
		return m, nil
	case school.Hit:
		switch p.Kind {
		case school.HitTeacher:
			m.openTeacher(p.ID)
		case school.HitClass:
			m.openClass(p.ID)
		default:
			m.openStudent(p.ID)
		}
		return m, nil
	case FileSelection:
		if p.EntityType != "" {
			return m, m.startImport(p)
		}
		action = func(context.Context) error { return nil }
		opts = append(opts, modal.WithSuccess("Files attached", fmt.Sprintf("%d files, %s", len(p.Paths), humanize.Bytes(uint64(p.Bytes)))))
	case ExportRequest:
		return m, m.startExport(p)
	default:
		m.logger.Warn().Str("payload", fmt.Sprintf("%T", msg.payload)).Msg("unhandled modal payload")
		return m, nil
	}

	opts = append(opts, modal.WithActionName(fmt.Sprintf("submit-%T", msg.payload)))
	ok, d := m.flows.Attempt(m.ctx, action, opts...)
	if ok && after != nil {
		after()
	}
	m.refresh()
	return m, scheduleDismiss(d)
}

func (m Model) startImport(sel FileSelection) tea.Cmd {
	loading := modal.For[modal.LoadingProps](m.stack)
	id := loading.Open(modal.LoadingProps{Message: fmt.Sprintf("Reading %d file(s)...", len(sel.Paths))})

	root := m.cfg.FileRoot
	return func() tea.Msg {
		students, err := readStudentFiles(root, sel.Paths)
		return importParsedMsg{loadingID: id, students: students, err: err}
	}
}

func (m Model) handleImportParsed(msg importParsedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.handleActionResult(actionResultMsg{
			loadingID: msg.loadingID,
			err:       msg.err,
			opts:      []modal.ReportOption{modal.WithErrorTitle("Import failed")},
		})
	}

	loading := modal.For[modal.LoadingProps](m.stack)
	if m.stack.Current().ID == msg.loadingID {
		_ = loading.UpdateProps(modal.LoadingProps{
			Message:  fmt.Sprintf("Adding %d students...", len(msg.students)),
			Progress: 50,
		})
	}

	dir := m.dir
	students := msg.students
	return m, m.runInBackground(msg.loadingID, "import-students", func(context.Context) error {
		var errs []error
		for i, s := range students {
			if _, err := dir.AddStudent(s); err != nil {
				errs = append(errs, fmt.Errorf("row %d (%s): %w", i+2, s.FullName(), err))
			}
		}
		return errors.Join(errs...)
	},
		modal.WithSuccess("Import complete", fmt.Sprintf("%d students added", len(students))),
		modal.WithErrorTitle("Import finished with errors"),
	)
}

func (m Model) startExport(req ExportRequest) tea.Cmd {
	loading := modal.For[modal.LoadingProps](m.stack)
	id := loading.Open(modal.LoadingProps{Message: "Exporting " + req.EntityType + "..."})

	root := m.cfg.FileRoot
	students := m.dir.Students(school.StudentQuery{Sort: school.SortByName}).Items
	return m.runInBackground(id, "export-students", func(context.Context) error {
		_, err := exportStudentsFile(root, req, students)
		return err
	},
		modal.WithSuccess("Export complete", fmt.Sprintf("%d students written to %s", len(students), req.Path)),
		modal.WithErrorTitle("Export failed"),
	)
}

func (m Model) handleActionResult(msg actionResultMsg) (Model, tea.Cmd) {
	if msg.loadingID != "" {
		m.stack.CloseEntry(msg.loadingID)
	}
	_, d := m.flows.Report(msg.err, msg.opts...)
	m.refresh()
	return m, scheduleDismiss(d)
}
