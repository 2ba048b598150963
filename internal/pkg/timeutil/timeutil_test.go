package timeutil

import (
	"fmt"
	"testing"
)

func TestNormalizeTime12Hour(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"1:30 PM", 810},
		{"11:59 PM", 1439},
		{"9:00 am", 540},
		{"5:00 pm", 1020},
		{"  7:15 PM  ", 1155},
		{"7:15PM", 1155},
	}
	for _, c := range cases {
		got, ok := NormalizeTime(c.input)
		if !ok {
			t.Errorf("NormalizeTime(%q) not ok, want %d", c.input, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeTime(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestNormalizeTime24Hour(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, ok := NormalizeTime(c.input)
		if !ok {
			t.Errorf("NormalizeTime(%q) not ok, want %d", c.input, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeTime(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestNormalizeTimeInvalid(t *testing.T) {
	invalid := []string{
		"",
		"garbage",
		"25:99 AM",
		"0:30 AM",
		"13:00 PM",
		"12:60 AM",
		"12:00 XM",
		"12-30",
		"12:3",
		"12:345",
	}
	for _, s := range invalid {
		if got, ok := NormalizeTime(s); ok {
			t.Errorf("NormalizeTime(%q) = %d, ok; want not ok", s, got)
		}
	}
}

// Every valid 12-hour string maps into [0, 1439] and no two distinct
// strings share a slot.
func TestNormalizeTimeBijection(t *testing.T) {
	seen := make(map[int]string)
	periods := []string{"AM", "PM"}
	for _, p := range periods {
		for h := 1; h <= 12; h++ {
			for m := 0; m <= 59; m++ {
				s := fmt.Sprintf("%d:%02d %s", h, m, p)
				got, ok := NormalizeTime(s)
				if !ok {
					t.Fatalf("NormalizeTime(%q) not ok", s)
				}
				if got < 0 || got >= MinutesPerDay {
					t.Fatalf("NormalizeTime(%q) = %d, out of range", s, got)
				}
				if prev, dup := seen[got]; dup {
					t.Fatalf("NormalizeTime(%q) = %d collides with %q", s, got, prev)
				}
				seen[got] = s
			}
		}
	}
	if len(seen) != MinutesPerDay {
		t.Fatalf("covered %d minutes, want %d", len(seen), MinutesPerDay)
	}
}

func TestComputeDuration(t *testing.T) {
	cases := []struct {
		start, end  string
		wantHours   int
		wantMinutes int
	}{
		{"9:00 AM", "5:00 PM", 8, 0},
		{"10:00 PM", "6:00 AM", 8, 0}, // crosses midnight
		{"9:00 AM", "9:00 AM", 0, 0},
		{"09:00", "17:30", 8, 30},
		{"8:15 AM", "12:00 PM", 3, 45},
		{"23:00", "01:00", 2, 0}, // crosses midnight
	}
	for _, c := range cases {
		got, ok := ComputeDuration(c.start, c.end)
		if !ok {
			t.Errorf("ComputeDuration(%q, %q) not ok", c.start, c.end)
			continue
		}
		if got.Hours != c.wantHours || got.Minutes != c.wantMinutes {
			t.Errorf("ComputeDuration(%q, %q) = %dh %dm, want %dh %dm",
				c.start, c.end, got.Hours, got.Minutes, c.wantHours, c.wantMinutes)
		}
	}
}

func TestComputeDurationInvalid(t *testing.T) {
	cases := [][2]string{
		{"garbage", "5:00 PM"},
		{"9:00 AM", "garbage"},
		{"", ""},
		{"25:99 AM", "5:00 PM"},
	}
	for _, c := range cases {
		if _, ok := ComputeDuration(c[0], c[1]); ok {
			t.Errorf("ComputeDuration(%q, %q) ok, want not ok", c[0], c[1])
		}
	}
}

func TestDurationString(t *testing.T) {
	cases := []struct {
		d    Duration
		want string
	}{
		{Duration{8, 0}, "8h"},
		{Duration{8, 30}, "8h 30m"},
		{Duration{0, 45}, "45m"},
		{Duration{0, 0}, "0m"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("Duration%v.String() = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{810, "13:30"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.input); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDurationTotals(t *testing.T) {
	d := Duration{Hours: 8, Minutes: 30}
	if got := d.TotalHours(); got != 8.5 {
		t.Errorf("TotalHours() = %v, want 8.5", got)
	}
	if got := d.TotalMinutes(); got != 510 {
		t.Errorf("TotalMinutes() = %v, want 510", got)
	}
}
