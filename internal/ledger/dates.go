package ledger

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are tried in priority order against the raw cell text before
// handing off to the permissive parser
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"02 Jan 2006",
}

// outputDateLayout is the emitted day-first form
const outputDateLayout = "02/01/2006"

// NormalizeDate re-emits a date cell as DD/MM/YYYY. Blank input yields an
// empty string. Input no parser understands is returned verbatim rather
// than blanked out.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(outputDateLayout)
		}
	}

	// Ambiguous numeric dates resolve day-first, same as the fixed layouts
	if t, err := dateparse.ParseAny(trimmed, dateparse.PreferMonthFirst(false)); err == nil {
		return t.Format(outputDateLayout)
	}

	return raw
}
