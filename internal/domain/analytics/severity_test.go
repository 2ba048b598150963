package analytics

import "testing"

func TestOvertimeSeverity(t *testing.T) {
	cases := []struct {
		hours float64
		want  Severity
	}{
		{-2, SeverityNone},
		{0, SeverityNone},
		{0.1, SeverityLow},
		{4.99, SeverityLow},
		{5, SeverityMedium},
		{9.99, SeverityMedium},
		{10, SeverityHigh},
		{40, SeverityHigh},
	}
	for _, c := range cases {
		if got := OvertimeSeverity(c.hours); got != c.want {
			t.Errorf("OvertimeSeverity(%v) = %s, want %s", c.hours, got, c.want)
		}
	}
}

func TestLatenessSeverity(t *testing.T) {
	cases := []struct {
		minutes int
		want    Severity
	}{
		{0, SeverityLow},
		{10, SeverityLow},
		{11, SeverityMedium},
		{30, SeverityMedium},
		{31, SeverityHigh},
		{120, SeverityHigh},
	}
	for _, c := range cases {
		if got := LatenessSeverity(c.minutes); got != c.want {
			t.Errorf("LatenessSeverity(%d) = %s, want %s", c.minutes, got, c.want)
		}
	}
}
