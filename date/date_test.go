package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "2025-08-01", want: New(2025, time.August, 1)},
		{name: "permissive single digits", in: "2025-8-1", want: New(2025, time.August, 1)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString_IsCanonical(t *testing.T) {
	d := New(2025, time.March, 7)
	if got, want := d.String(), "2025-03-07"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAdd_NormalizesAcrossMonths(t *testing.T) {
	d := New(2025, time.March, 1).Add(-30)
	if got, want := d.String(), "2025-01-30"; got != want {
		t.Errorf("Add(-30) = %q, want %q", got, want)
	}
}

func TestStringOrder_MatchesChronology(t *testing.T) {
	// The trailing-window aggregates compare stored date strings with >=,
	// which is only sound because String() zero-pads month and day.
	a := New(2025, time.September, 30)
	b := New(2025, time.October, 2)
	if !(a.String() < b.String()) {
		t.Errorf("expected %q < %q", a, b)
	}
	if !a.Before(b) {
		t.Errorf("expected %v before %v", a, b)
	}
}
