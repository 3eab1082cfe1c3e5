package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hay-kot/campus/internal/core/modal"
)

// KeyMap holds the dashboard bindings. Keys only reach the dashboard while
// no modal is active.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextView   key.Binding
	Open       key.Binding
	Search     key.Binding
	Filter     key.Binding
	Help       key.Binding
	Quit       key.Binding
	Logout     key.Binding
	History    key.Binding
	Settings   key.Binding
	Profile    key.Binding
	Password   key.Binding
	NotifyPref key.Binding

	// Records
	AddStudent  key.Binding
	EditStudent key.Binding
	Delete      key.Binding
	AddTeacher  key.Binding
	AddClass    key.Binding
	AddSubject  key.Binding
	Teacher     key.Binding
	Account     key.Binding

	// Fees
	CollectFee   key.Binding
	Receipt      key.Binding
	FeeStructure key.Binding

	// Attendance and scheduling
	MarkAttendance key.Binding
	Report         key.Binding
	Timetable      key.Binding
	Schedule       key.Binding
	Calendar       key.Binding
	AddEvent       key.Binding
	Exam           key.Binding
	Announce       key.Binding

	// Files and data
	Upload   key.Binding
	Import   key.Binding
	Export   key.Binding
	Photo    key.Binding
	Handbook key.Binding
}

func binding(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// DefaultKeyMap returns the built-in dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         binding("up", "k", "up"),
		Down:       binding("down", "j", "down"),
		NextView:   binding("switch view", "tab"),
		Open:       binding("details", "enter"),
		Search:     binding("search", "/"),
		Filter:     binding("filter by status", "s"),
		Help:       binding("help", "?"),
		Quit:       binding("quit", "q", "ctrl+c"),
		Logout:     binding("log out", "L"),
		History:    binding("notifications", "N"),
		Settings:   binding("theme", "S"),
		Profile:    binding("profile", "P"),
		Password:   binding("change password", "W"),
		NotifyPref: binding("notification settings", "G"),

		AddStudent:  binding("add student", "a"),
		EditStudent: binding("edit student", "e"),
		Delete:      binding("delete", "d"),
		AddTeacher:  binding("add teacher", "R"),
		AddClass:    binding("add class", "K"),
		AddSubject:  binding("add subject", "B"),
		Teacher:     binding("class teacher", "y"),
		Account:     binding("my account", "U"),

		CollectFee:   binding("collect fee", "f"),
		Receipt:      binding("last receipt", "r"),
		FeeStructure: binding("fee structure", "F"),

		MarkAttendance: binding("mark attendance", "m"),
		Report:         binding("attendance report", "A"),
		Timetable:      binding("timetable", "t"),
		Schedule:       binding("schedule lesson", "T"),
		Calendar:       binding("day calendar", "c"),
		AddEvent:       binding("add event", "E"),
		Exam:           binding("schedule exam", "x"),
		Announce:       binding("announcement", "n"),

		Upload:   binding("upload files", "u"),
		Import:   binding("import students", "i"),
		Export:   binding("export students", "o"),
		Photo:    binding("student photo", "v"),
		Handbook: binding("handbook", "H"),
	}
}

func helpEntries(bindings ...key.Binding) [][2]string {
	out := make([][2]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, [2]string{h.Key, h.Desc})
	}
	return out
}

// HelpProps describes every binding for the help modal.
func (k KeyMap) HelpProps(cancelKey string) modal.HelpProps {
	return modal.HelpProps{
		Title: "Keyboard Shortcuts",
		Sections: []modal.HelpSection{
			{Title: "Navigation", Entries: helpEntries(k.Up, k.Down, k.NextView, k.Open, k.Search, k.Filter)},
			{Title: "Records", Entries: helpEntries(k.AddStudent, k.EditStudent, k.Delete, k.AddTeacher, k.AddClass, k.AddSubject, k.Teacher)},
			{Title: "Fees", Entries: helpEntries(k.CollectFee, k.Receipt, k.FeeStructure)},
			{Title: "Attendance & Calendar", Entries: helpEntries(k.MarkAttendance, k.Report, k.Timetable, k.Schedule, k.Calendar, k.AddEvent, k.Exam, k.Announce)},
			{Title: "Files & Data", Entries: helpEntries(k.Upload, k.Import, k.Export, k.Photo, k.Handbook)},
			{Title: "Account", Entries: helpEntries(k.Account, k.Profile, k.Password, k.NotifyPref, k.Settings, k.History, k.Logout, k.Quit)},
			{Title: "Dialogs", Entries: [][2]string{
				{cancelKey, "close dialog"},
				{"tab/shift+tab", "next/previous field"},
				{"ctrl+s", "submit form"},
			}},
		},
	}
}
