package tui

// BuildInfo holds build-time metadata shown in the dashboard header.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}
