package pdftext

import (
	"fmt"
	"time"
)

// FormatDate renders t as a PDF date string: D:YYYYMMDDHHmmSS followed by
// the UTC offset, Z when the offset is zero and ±HH'mm' otherwise. The
// result is a pure function of t, including its location.
func FormatDate(t time.Time) string {
	s := t.Format("D:20060102150405")
	_, off := t.Zone()
	if off == 0 {
		return s + "Z"
	}
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%s%c%02d'%02d'", s, sign, off/3600, off%3600/60)
}
