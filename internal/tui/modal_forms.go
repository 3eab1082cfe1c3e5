package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/tui/components/form"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	required  = form.FieldValidation{Required: true}
	emailRule = form.FieldValidation{Email: true}
	dateRule  = form.FieldValidation{Required: true, Pattern: datePattern}
	timeRule  = form.FieldValidation{Required: true, Pattern: timePattern}
)

const noneOption = "(none)"

func classNames(classes []school.Class) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Name
	}
	return out
}

func classID(classes []school.Class, name string) string {
	for _, c := range classes {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

func className(classes []school.Class, id string) string {
	for _, c := range classes {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func teacherNames(teachers []school.Teacher) []string {
	out := make([]string, len(teachers))
	for i, t := range teachers {
		out[i] = t.Name
	}
	return out
}

func teacherID(teachers []school.Teacher, name string) string {
	for _, t := range teachers {
		if t.Name == name {
			return t.ID
		}
	}
	return ""
}

func subjectNames(subjects []school.Subject) []string {
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = s.Name
	}
	return out
}

func subjectID(subjects []school.Subject, name string) string {
	for _, s := range subjects {
		if s.Name == name {
			return s.ID
		}
	}
	return ""
}

func fieldErr(field, msg string) error {
	return criterio.NewFieldErrors(field, errors.New(msg))
}

func parseDay(field, value string) (time.Time, error) {
	d, err := time.ParseInLocation(inputDate, value, time.Local)
	if err != nil {
		return time.Time{}, fieldErr(field, "use YYYY-MM-DD")
	}
	return d, nil
}

func atClock(day time.Time, field, clock string) (time.Time, error) {
	t, err := time.Parse(inputTime, clock)
	if err != nil {
		return time.Time{}, fieldErr(field, "use HH:MM")
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func renderStudentForm(p modal.StudentFormProps, h Handlers) Component {
	var s school.Student
	title := "Add Student"
	if p.Student != nil {
		s = *p.Student
		title = "Edit Student"
	}

	fields := []fieldSpec{
		{Variable: "first_name", Type: fieldText, Label: "First name", Default: s.FirstName, Validation: required},
		{Variable: "last_name", Type: fieldText, Label: "Last name", Default: s.LastName, Validation: required},
		{Variable: "class_id", Type: fieldSelect, Label: "Class", Options: classNames(p.Classes), Default: className(p.Classes, s.ClassID)},
		{Variable: "guardian", Type: fieldText, Label: "Guardian", Default: s.Guardian},
		{Variable: "phone", Type: fieldText, Label: "Phone", Default: s.Phone, Placeholder: "+254 7xx xxx xxx"},
		{Variable: "email", Type: fieldText, Label: "Email", Default: s.Email, Validation: emailRule},
	}
	if p.Student != nil {
		fields = append(fields, fieldSpec{
			Variable: "status",
			Type:     fieldSelect,
			Label:    "Status",
			Options:  []string{string(school.StatusActive), string(school.StatusSuspended), string(school.StatusGraduated)},
			Default:  string(s.Status),
		})
	}

	return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
		out := s
		out.FirstName = strings.TrimSpace(d.String("first_name"))
		out.LastName = strings.TrimSpace(d.String("last_name"))
		out.ClassID = classID(p.Classes, d.String("class_id"))
		out.Guardian = d.String("guardian")
		out.Phone = d.String("phone")
		out.Email = d.String("email")
		if status := d.String("status"); status != "" {
			out.Status = school.StudentStatus(status)
		}
		if err := out.Validate(); err != nil {
			return nil, err
		}
		return out, nil
	}, h)
}

func renderTeacherForm(p modal.TeacherFormProps, h Handlers) Component {
	var t school.Teacher
	title := "Add Teacher"
	if p.Teacher != nil {
		t = *p.Teacher
		title = "Edit Teacher"
	}

	var taught []string
	for _, s := range p.Subjects {
		if slices.Contains(t.Subjects, s.ID) {
			taught = append(taught, s.Name)
		}
	}

	fields := []fieldSpec{
		{Variable: "name", Type: fieldText, Label: "Name", Default: t.Name, Validation: required},
		{Variable: "email", Type: fieldText, Label: "Email", Default: t.Email, Validation: emailRule},
		{Variable: "phone", Type: fieldText, Label: "Phone", Default: t.Phone},
		{Variable: "subjects", Type: fieldMultiSelect, Label: "Subjects", Options: subjectNames(p.Subjects), Selected: taught},
	}

	return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
		out := t
		out.Name = strings.TrimSpace(d.String("name"))
		out.Email = d.String("email")
		out.Phone = d.String("phone")
		out.Subjects = nil
		for _, name := range d.Strings("subjects") {
			out.Subjects = append(out.Subjects, subjectID(p.Subjects, name))
		}
		if err := out.Validate(); err != nil {
			return nil, err
		}
		return out, nil
	}, h)
}

func renderClassForm(p modal.ClassFormProps, h Handlers) Component {
	c := school.Class{Capacity: 30}
	title := "Add Class"
	if p.Class != nil {
		c = *p.Class
		title = "Edit Class"
	}

	teacherName := noneOption
	for _, t := range p.Teachers {
		if t.ID == c.TeacherID {
			teacherName = t.Name
		}
	}

	fields := []fieldSpec{
		{Variable: "name", Type: fieldText, Label: "Name", Default: c.Name, Validation: required},
		{Variable: "teacher_id", Type: fieldSelect, Label: "Class teacher", Options: append([]string{noneOption}, teacherNames(p.Teachers)...), Default: teacherName},
		{Variable: "room", Type: fieldText, Label: "Room", Default: c.Room},
		{Variable: "capacity", Type: fieldText, Label: "Capacity", Default: strconv.Itoa(c.Capacity), Validation: form.FieldValidation{Required: true, Numeric: true}},
	}

	return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
		capacity, err := strconv.Atoi(d.String("capacity"))
		if err != nil {
			return nil, fieldErr("capacity", "must be a whole number")
		}

		out := c
		out.Name = strings.TrimSpace(d.String("name"))
		out.TeacherID = teacherID(p.Teachers, d.String("teacher_id"))
		out.Room = d.String("room")
		out.Capacity = capacity
		if err := out.Validate(); err != nil {
			return nil, err
		}
		return out, nil
	}, h)
}

func renderSubjectForm(p modal.SubjectFormProps, h Handlers) Component {
	var s school.Subject
	title := "Add Subject"
	if p.Subject != nil {
		s = *p.Subject
		title = "Edit Subject"
	}

	fields := []fieldSpec{
		{Variable: "name", Type: fieldText, Label: "Name", Default: s.Name, Validation: required},
		{Variable: "code", Type: fieldText, Label: "Code", Default: s.Code, Placeholder: "MAT", Validation: form.FieldValidation{Required: true, MaxLength: 6}},
	}

	return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
		out := s
		out.Name = strings.TrimSpace(d.String("name"))
		out.Code = strings.ToUpper(strings.TrimSpace(d.String("code")))
		return out, nil
	}, h)
}

func renderExamForm(p modal.ExamFormProps, h Handlers) Component {
	date := ""
	if !p.Date.IsZero() {
		date = p.Date.Format(inputDate)
	}

	fields := []fieldSpec{
		{Variable: "subject_id", Type: fieldSelect, Label: "Subject", Options: subjectNames(p.Subjects)},
		{Variable: "title", Type: fieldText, Label: "Title", Placeholder: "Mid-term paper 1", Validation: required},
		{Variable: "date", Type: fieldText, Label: "Date", Default: date, Placeholder: inputDate, Validation: dateRule},
		{Variable: "max_score", Type: fieldText, Label: "Max score", Default: "100", Validation: form.FieldValidation{Required: true, Numeric: true}},
	}

	return newFormModal(p.Kind(), "Schedule Exam", fields, func(d *form.Dialog) (any, error) {
		day, err := parseDay("date", d.String("date"))
		if err != nil {
			return nil, err
		}
		score, err := strconv.Atoi(d.String("max_score"))
		if err != nil || score <= 0 {
			return nil, fieldErr("max_score", "must be greater than zero")
		}
		return ExamDraft{
			ClassID:   p.ClassID,
			SubjectID: subjectID(p.Subjects, d.String("subject_id")),
			Title:     strings.TrimSpace(d.String("title")),
			Date:      day,
			MaxScore:  score,
		}, nil
	}, h)
}

func renderAnnouncementForm(p modal.AnnouncementFormProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "title", Type: fieldText, Label: "Title", Validation: required},
		{Variable: "body", Type: fieldTextArea, Label: "Message", Validation: form.FieldValidation{Required: true, MaxLength: 1000}},
	}
	if len(p.Audience) > 0 {
		fields = append(fields, fieldSpec{
			Variable:   "audience",
			Type:       fieldMultiSelect,
			Label:      "Audience",
			Options:    p.Audience,
			Validation: required,
		})
	}

	return newFormModal(p.Kind(), "New Announcement", fields, func(d *form.Dialog) (any, error) {
		return Announcement{
			Title:    strings.TrimSpace(d.String("title")),
			Body:     d.String("body"),
			Audience: d.Strings("audience"),
		}, nil
	}, h)
}

func feeCollectionRenderer(currency string) func(modal.FeeCollectionProps, Handlers) Component {
	return func(p modal.FeeCollectionProps, h Handlers) Component {
		methods := p.Methods
		if len(methods) == 0 {
			methods = []string{"cash", "bank", "mobile"}
		}

		due := fmt.Sprintf("%d.%02d", p.Outstanding/100, p.Outstanding%100)
		fields := []fieldSpec{
			{Variable: "amount", Type: fieldText, Label: "Amount (" + currency + ")", Default: due, Validation: required},
			{Variable: "method", Type: fieldSelect, Label: "Method", Options: methods},
			{Variable: "reference", Type: fieldText, Label: "Reference", Placeholder: "receipt or transaction code"},
		}

		title := "Collect Fees - " + p.Student.FullName()
		return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
			amount, err := parseMoney(d.String("amount"))
			if err != nil {
				return nil, fieldErr("amount", err.Error())
			}
			if amount > p.Outstanding {
				return nil, fieldErr("amount", "exceeds outstanding "+money(currency, p.Outstanding))
			}

			pay := school.Payment{
				StudentID: p.Student.ID,
				Amount:    amount,
				Method:    d.String("method"),
				Reference: strings.TrimSpace(d.String("reference")),
			}
			if err := pay.Validate(); err != nil {
				return nil, err
			}
			return pay, nil
		}, h)
	}
}

func renderEventForm(p modal.EventFormProps, h Handlers) Component {
	var e school.Event
	title := "Add Event"
	if p.Event != nil {
		e = *p.Event
		title = "Edit Event"
	}

	day := p.Date
	if !e.Start.IsZero() {
		day = e.Start
	}
	date, start, end := "", "", ""
	if !day.IsZero() {
		date = day.Format(inputDate)
	}
	if !e.Start.IsZero() {
		start = e.Start.Format(inputTime)
	}
	if !e.End.IsZero() {
		end = e.End.Format(inputTime)
	}

	const allClasses = "All classes"
	classDefault := allClasses
	if name := className(p.Classes, e.ClassID); name != "" {
		classDefault = name
	}

	fields := []fieldSpec{
		{Variable: "title", Type: fieldText, Label: "Title", Default: e.Title, Validation: required},
		{Variable: "date", Type: fieldText, Label: "Date", Default: date, Placeholder: inputDate, Validation: dateRule},
		{Variable: "start", Type: fieldText, Label: "Starts", Default: start, Placeholder: inputTime, Validation: timeRule},
		{Variable: "end", Type: fieldText, Label: "Ends", Default: end, Placeholder: inputTime, Validation: form.FieldValidation{Pattern: timePattern}},
		{Variable: "location", Type: fieldText, Label: "Location", Default: e.Location},
		{Variable: "class_id", Type: fieldSelect, Label: "Class", Options: append([]string{allClasses}, classNames(p.Classes)...), Default: classDefault},
		{Variable: "description", Type: fieldTextArea, Label: "Description", Default: e.Description},
	}

	return newFormModal(p.Kind(), title, fields, func(d *form.Dialog) (any, error) {
		day, err := parseDay("date", d.String("date"))
		if err != nil {
			return nil, err
		}

		out := e
		out.Title = strings.TrimSpace(d.String("title"))
		out.Location = d.String("location")
		out.Description = d.String("description")
		out.ClassID = classID(p.Classes, d.String("class_id"))

		if out.Start, err = atClock(day, "start", d.String("start")); err != nil {
			return nil, err
		}
		out.End = time.Time{}
		if end := d.String("end"); end != "" {
			if out.End, err = atClock(day, "end", end); err != nil {
				return nil, err
			}
		}

		if err := out.Validate(); err != nil {
			return nil, err
		}
		return out, nil
	}, h)
}

var schoolDays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

func renderScheduleClass(p modal.ScheduleClassProps, h Handlers) Component {
	days := make([]string, len(schoolDays))
	for i, d := range schoolDays {
		days[i] = d.String()
	}

	fields := []fieldSpec{
		{Variable: "day", Type: fieldSelect, Label: "Day", Options: days},
		{Variable: "start", Type: fieldText, Label: "Starts", Placeholder: inputTime, Validation: timeRule},
		{Variable: "subject_id", Type: fieldSelect, Label: "Subject", Options: subjectNames(p.Subjects)},
		{Variable: "teacher_id", Type: fieldSelect, Label: "Teacher", Options: teacherNames(p.Teachers)},
	}

	return newFormModal(p.Kind(), "Schedule Lesson - "+p.Class.Name, fields, func(d *form.Dialog) (any, error) {
		slot := school.TimetableSlot{
			ClassID:   p.Class.ID,
			Start:     d.String("start"),
			SubjectID: subjectID(p.Subjects, d.String("subject_id")),
			TeacherID: teacherID(p.Teachers, d.String("teacher_id")),
		}
		for _, wd := range schoolDays {
			if wd.String() == d.String("day") {
				slot.Day = wd
			}
		}
		if slot.SubjectID == "" {
			return nil, fieldErr("subject_id", "is required")
		}
		return slot, nil
	}, h)
}

func renderProfileSettings(p modal.ProfileSettingsProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "name", Type: fieldText, Label: "Name", Default: p.Name, Validation: required},
		{Variable: "email", Type: fieldText, Label: "Email", Default: p.Email, Validation: form.FieldValidation{Required: true, Email: true}},
		{Variable: "phone", Type: fieldText, Label: "Phone", Default: p.Phone},
	}

	return newFormModal(p.Kind(), "Profile", fields, func(d *form.Dialog) (any, error) {
		return ProfileUpdate{
			Name:  strings.TrimSpace(d.String("name")),
			Email: d.String("email"),
			Phone: d.String("phone"),
		}, nil
	}, h)
}

func renderChangePassword(p modal.ChangePasswordProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "current", Type: fieldPassword, Label: "Current password", Validation: required},
		{Variable: "new", Type: fieldPassword, Label: "New password", Validation: form.FieldValidation{Required: true, MinLength: 8}},
		{Variable: "confirm", Type: fieldPassword, Label: "Repeat new password", Validation: required},
	}

	return newFormModal(p.Kind(), "Change Password", fields, func(d *form.Dialog) (any, error) {
		var errs criterio.FieldErrorsBuilder
		if d.String("new") == d.String("current") {
			errs = errs.Append("new", errors.New("must differ from the current password"))
		}
		if d.String("confirm") != d.String("new") {
			errs = errs.Append("confirm", errors.New("does not match"))
		}
		if err := errs.ToError(); err != nil {
			return nil, err
		}
		return PasswordChange{UserID: p.UserID, Current: d.String("current"), New: d.String("new")}, nil
	}, h)
}

func renderNotificationSettings(p modal.NotificationSettingsProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "enabled", Type: fieldMultiSelect, Label: "Send notifications by", Options: p.Channels, Selected: p.Enabled},
	}
	return newFormModal(p.Kind(), "Notification Settings", fields, func(d *form.Dialog) (any, error) {
		return NotificationPrefs{Enabled: d.Strings("enabled")}, nil
	}, h)
}

func renderSettings(p modal.SettingsProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "theme", Type: fieldSelect, Label: "Theme", Options: p.Themes, Default: p.Theme},
	}
	return newFormModal(p.Kind(), "Settings", fields, func(d *form.Dialog) (any, error) {
		return ThemeChoice{Theme: d.String("theme")}, nil
	}, h)
}

func renderDataExport(p modal.DataExportProps, h Handlers) Component {
	formats := p.Formats
	if len(formats) == 0 {
		formats = []string{"csv", "json", "yaml"}
	}

	fields := []fieldSpec{
		{Variable: "format", Type: fieldSelect, Label: "Format", Options: formats},
		{Variable: "path", Type: fieldText, Label: "File", Default: p.EntityType + "-export", Validation: required},
	}

	return newFormModal(p.Kind(), "Export "+p.EntityType, fields, func(d *form.Dialog) (any, error) {
		format := d.String("format")
		path := strings.TrimSpace(d.String("path"))
		if filepath.Ext(path) == "" {
			path += "." + format
		}
		return ExportRequest{EntityType: p.EntityType, Format: format, Path: path}, nil
	}, h)
}

func renderFilter(p modal.FilterProps, h Handlers) Component {
	fields := []fieldSpec{
		{Variable: "selected", Type: fieldMultiSelect, Label: p.Field, Options: p.Options, Selected: p.Selected},
	}
	return newFormModal(p.Kind(), "Filter", fields, func(d *form.Dialog) (any, error) {
		return FilterSelection{Field: p.Field, Selected: d.Strings("selected")}, nil
	}, h)
}
