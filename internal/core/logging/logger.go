// Package logging holds zerolog helpers shared across campus: component
// loggers and context fields for modal entries and workflow actions.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier. The logger
// carries ContextHook, so events logged with Ctx pick up entry_id and
// action fields.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
