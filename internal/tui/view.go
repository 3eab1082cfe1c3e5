package tui

const unknownViewType = "unknown"

// ViewType represents which dashboard pane is active.
type ViewType int

const (
	ViewStudents ViewType = iota
	ViewClasses
	ViewEvents

	viewCount
)

// String returns the lowercase name of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewStudents:
		return "students"
	case ViewClasses:
		return "classes"
	case ViewEvents:
		return "events"
	default:
		return unknownViewType
	}
}

// Next returns the pane after v, wrapping around.
func (v ViewType) Next() ViewType {
	return (v + 1) % viewCount
}
