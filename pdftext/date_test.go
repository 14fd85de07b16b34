package pdftext

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			"utc",
			time.Date(2024, 3, 9, 5, 4, 3, 0, time.UTC),
			"D:20240309050403Z",
		},
		{
			"zero offset named zone",
			time.Date(2024, 3, 9, 5, 4, 3, 0, time.FixedZone("WET", 0)),
			"D:20240309050403Z",
		},
		{
			"positive offset",
			time.Date(2024, 12, 31, 23, 59, 58, 0, time.FixedZone("IST", 5*3600+1800)),
			"D:20241231235958+05'30'",
		},
		{
			"negative offset",
			time.Date(2023, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600)),
			"D:20230102030405-03'00'",
		},
		{
			"negative offset with minutes",
			time.Date(2023, 6, 7, 8, 9, 10, 0, time.FixedZone("VET", -(4*3600+1800))),
			"D:20230607080910-04'30'",
		},
		{
			"nanoseconds ignored",
			time.Date(2025, 11, 30, 22, 1, 2, 999999999, time.UTC),
			"D:20251130220102Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.time); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.time, got, tt.want)
			}
		})
	}
}

func TestFormatDateGrammar(t *testing.T) {
	re := regexp.MustCompile(`^D:\d{14}(Z|[+-]\d{2}'\d{2}')$`)
	zones := []*time.Location{
		time.UTC,
		time.Local,
		time.FixedZone("", 13*3600+45*60),
		time.FixedZone("", -11*3600),
	}
	for _, loc := range zones {
		got := FormatDate(time.Now().In(loc))
		if !re.MatchString(got) {
			t.Errorf("FormatDate(now in %v) = %q, want match for %v", loc, got, re)
		}
	}
}
