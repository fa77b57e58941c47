package sqlstore

import (
	"strings"

	"github.com/talgya/fishgame-core/gameerr"
)

// translate maps a raw SQLite driver error to the gameerr taxonomy other
// packages pattern-match on. modernc.org/sqlite surfaces constraint
// failures as plain error strings, so this matches on message text rather
// than a typed error code.
func translate(err error, context string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return gameerr.DatabaseUniqueViolation(context + ": " + msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return gameerr.DatabaseForeignKeyViolation(context + ": " + msg)
	default:
		return gameerr.DatabaseOther(err)
	}
}
