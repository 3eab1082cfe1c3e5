package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	dateLayout     = "Mon 2 Jan 2006"
	dateTimeLayout = "Mon 2 Jan 2006 15:04"
	inputDate      = "2006-01-02"
	inputTime      = "15:04"
)

// money formats an amount held in minor units.
func money(currency string, minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s %s%s.%02d", currency, sign, humanize.Comma(minor/100), minor%100)
}

// parseMoney reads a major-unit amount such as "1250" or "1250.5" into
// minor units.
func parseMoney(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			f *= 10
		}
	}
	return int64(w)*100 + int64(f), nil
}

func when(start, end time.Time) string {
	if end.IsZero() {
		return start.Format(dateTimeLayout)
	}
	return start.Format(dateTimeLayout) + " - " + end.Format(inputTime)
}
