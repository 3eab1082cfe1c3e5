package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/tui/components"
)

const infoHelp = "[j/k] scroll  [enter/esc] close"

// infoModal shows read-only records. Enter closes it.
type infoModal struct {
	title    string
	sections []components.InfoSection
	footer   string
	dialog   *components.InfoDialog
	h        Handlers
}

func newInfoModal(title string, sections []components.InfoSection, footer string, h Handlers) *infoModal {
	return &infoModal{title: title, sections: sections, footer: footer, h: h}
}

func (m *infoModal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "enter" {
		m.h.Close()
		return nil
	}
	if m.dialog != nil {
		m.dialog.Update(key)
	}
	return nil
}

func (m *infoModal) View(width, height int) string {
	if m.dialog == nil {
		m.dialog = components.NewInfoDialog(m.title, m.sections, m.footer, infoHelp, width, height)
	}
	return m.dialog.View(width, height)
}

func item(label, value string) components.InfoItem {
	return components.InfoItem{Label: label, Value: value}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func renderUserDetail(p modal.UserDetailProps, h Handlers) Component {
	return newInfoModal("User", []components.InfoSection{{
		Title: "Account",
		Items: []components.InfoItem{
			item("Name", orDash(p.Name)),
			item("Role", orDash(p.Role)),
			item("Email", orDash(p.Email)),
			item("ID", orDash(p.UserID)),
		},
	}}, "", h)
}

func studentDetailRenderer(currency string) func(modal.StudentDetailProps, Handlers) Component {
	return func(p modal.StudentDetailProps, h Handlers) Component {
		s := p.Student

		status := components.InfoStatusPass
		if s.Status != school.StatusActive {
			status = components.InfoStatusWarn
		}
		balance := components.InfoStatusPass
		if p.Balance > 0 {
			balance = components.InfoStatusWarn
		}

		return newInfoModal(s.FullName(), []components.InfoSection{
			{
				Title: "Student",
				Items: []components.InfoItem{
					item("Class", orDash(p.ClassName)),
					{Label: "Status", Value: string(s.Status), Status: status},
					item("Enrolled", s.Enrolled.Format(dateLayout)+" ("+humanize.Time(s.Enrolled)+")"),
					item("Email", orDash(s.Email)),
					item("ID", s.ID),
				},
			},
			{
				Title: "Guardian",
				Items: []components.InfoItem{
					item("Name", orDash(s.Guardian)),
					item("Phone", orDash(s.Phone)),
				},
			},
			{
				Title: "Fees",
				Items: []components.InfoItem{
					{Label: "Outstanding", Value: money(currency, p.Balance), Status: balance},
				},
			},
		}, "", h)
	}
}

func renderTeacherDetail(p modal.TeacherDetailProps, h Handlers) Component {
	t := p.Teacher

	classes := make([]components.InfoItem, 0, len(p.Classes))
	for _, c := range p.Classes {
		classes = append(classes, item(c.Name, "room "+orDash(c.Room)))
	}

	return newInfoModal(t.Name, []components.InfoSection{
		{
			Title: "Contact",
			Items: []components.InfoItem{
				item("Email", orDash(t.Email)),
				item("Phone", orDash(t.Phone)),
				item("Subjects", orDash(strings.Join(t.Subjects, ", "))),
			},
		},
		{Title: "Classes", Items: classes},
	}, "", h)
}

func renderClassDetail(p modal.ClassDetailProps, h Handlers) Component {
	c := p.Class

	roster := make([]components.InfoItem, 0, len(p.Students))
	for _, s := range p.Students {
		roster = append(roster, item(s.FullName(), string(s.Status)))
	}

	fill := components.InfoStatusPass
	if c.Capacity > 0 && len(p.Students) >= c.Capacity {
		fill = components.InfoStatusWarn
	}

	return newInfoModal(c.Name, []components.InfoSection{
		{
			Title: "Class",
			Items: []components.InfoItem{
				item("Teacher", orDash(p.Teacher)),
				item("Room", orDash(c.Room)),
				{Label: "Enrolled", Value: fmt.Sprintf("%d / %d", len(p.Students), c.Capacity), Status: fill},
			},
		},
		{Title: "Students", Items: roster},
	}, "", h)
}

func eventItems(e school.Event) []components.InfoItem {
	return []components.InfoItem{
		item("When", when(e.Start, e.End)),
		item("Where", orDash(e.Location)),
		item("About", orDash(e.Description)),
	}
}

func renderEventDetail(p modal.EventDetailProps, h Handlers) Component {
	return newInfoModal(p.Event.Title, []components.InfoSection{
		{Title: "Event", Items: eventItems(p.Event)},
	}, "", h)
}

func feeReceiptRenderer(currency string) func(modal.FeeReceiptProps, Handlers) Component {
	return func(p modal.FeeReceiptProps, h Handlers) Component {
		pay := p.Payment
		return newInfoModal("Receipt "+pay.ID, []components.InfoSection{{
			Items: []components.InfoItem{
				item("Student", p.Student.FullName()),
				{Label: "Amount", Value: money(currency, pay.Amount), Status: components.InfoStatusPass},
				item("Method", pay.Method),
				item("Reference", orDash(pay.Reference)),
				item("Paid", pay.PaidAt.Format(dateTimeLayout)),
			},
		}}, "", h)
	}
}

func feeStructureRenderer(currency string) func(modal.FeeStructureProps, Handlers) Component {
	return func(p modal.FeeStructureProps, h Handlers) Component {
		byTerm := map[string][]components.InfoItem{}
		var terms []string
		var total int64
		for _, f := range p.Items {
			if _, ok := byTerm[f.Term]; !ok {
				terms = append(terms, f.Term)
			}
			byTerm[f.Term] = append(byTerm[f.Term], item(f.Name, money(currency, f.Amount)))
			total += f.Amount
		}
		slices.Sort(terms)

		sections := make([]components.InfoSection, 0, len(terms))
		for _, t := range terms {
			sections = append(sections, components.InfoSection{Title: t, Items: byTerm[t]})
		}
		if len(sections) == 0 {
			sections = append(sections, components.InfoSection{Title: orDash(p.Term)})
		}

		title := "Fee Structure"
		if p.Term != "" {
			title += " - " + p.Term
		}
		return newInfoModal(title, sections, "Total "+money(currency, total), h)
	}
}

func renderAttendanceReport(p modal.AttendanceReportProps, h Handlers) Component {
	rows := make([]components.InfoItem, 0, len(p.Summary))
	for _, s := range p.Summary {
		rate := s.Rate()
		status := components.InfoStatusPass
		switch {
		case rate < 0.75:
			status = components.InfoStatusFail
		case rate < 0.9:
			status = components.InfoStatusWarn
		}
		rows = append(rows, components.InfoItem{
			Label:  s.Name,
			Value:  fmt.Sprintf("%3.0f%%  present %d  late %d  absent %d", rate*100, s.Present, s.Late, s.Absent),
			Status: status,
		})
	}

	return newInfoModal("Attendance - "+p.Class.Name, []components.InfoSection{
		{Title: "Students", Items: rows},
	}, "", h)
}

func renderTimetable(p modal.TimetableProps, h Handlers) Component {
	subjects := map[string]string{}
	for _, s := range p.Subjects {
		subjects[s.ID] = s.Name
	}
	teachers := map[string]string{}
	for _, t := range p.Teachers {
		teachers[t.ID] = t.Name
	}
	label := func(m map[string]string, id string) string {
		if name, ok := m[id]; ok {
			return name
		}
		return id
	}

	slots := slices.Clone(p.Slots)
	slices.SortFunc(slots, func(a, b school.TimetableSlot) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Start, b.Start))
	})

	var sections []components.InfoSection
	for _, s := range slots {
		title := s.Day.String()
		if len(sections) == 0 || sections[len(sections)-1].Title != title {
			sections = append(sections, components.InfoSection{Title: title})
		}
		last := &sections[len(sections)-1]
		last.Items = append(last.Items, item(s.Start, label(subjects, s.SubjectID)+" - "+label(teachers, s.TeacherID)))
	}
	if len(sections) == 0 {
		sections = append(sections, components.InfoSection{Title: "No lessons scheduled"})
	}

	return newInfoModal("Timetable - "+p.Class.Name, sections, "", h)
}

func renderCalendarDay(p modal.CalendarDayProps, h Handlers) Component {
	sections := make([]components.InfoSection, 0, len(p.Events))
	for _, e := range p.Events {
		sections = append(sections, components.InfoSection{Title: e.Title, Items: eventItems(e)})
	}
	if len(sections) == 0 {
		sections = append(sections, components.InfoSection{Title: "Events"})
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	return newInfoModal(date.Format(dateLayout), sections, "", h)
}
