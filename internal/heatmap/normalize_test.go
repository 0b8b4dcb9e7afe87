package heatmap

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/contribgrid/internal/models"
)

func TestNormalizeWeek_OnlyWednesday(t *testing.T) {
	// 2024-01-10 is a Wednesday
	week := models.Week{ContributionDays: []models.ContributionDay{
		day("2024-01-10", models.LevelSecondQuartile),
	}}

	nw, err := NormalizeWeek(week)
	if err != nil {
		t.Fatalf("NormalizeWeek() failed: %v", err)
	}

	placeholders := 0
	for i, slot := range nw {
		if slot.Weekday != time.Weekday(i) {
			t.Errorf("slot %d has weekday %v", i, slot.Weekday)
		}
		if slot.Placeholder() {
			placeholders++
		}
	}
	if placeholders != 6 {
		t.Errorf("placeholders = %d, want 6", placeholders)
	}

	wed := nw[3]
	if wed.Placeholder() {
		t.Fatal("Wednesday slot is a placeholder")
	}
	if wed.Day.Date != "2024-01-10" || wed.Level() != models.LevelSecondQuartile {
		t.Errorf("Wednesday slot = %+v, want 2024-01-10 SECOND_QUARTILE", *wed.Day)
	}
}

func TestNormalizeWeek_Unsorted(t *testing.T) {
	week := models.Week{ContributionDays: []models.ContributionDay{
		day("2024-01-13", models.LevelFourthQuartile), // Saturday
		day("2024-01-07", models.LevelNone),           // Sunday
		day("2024-01-09", models.LevelFirstQuartile),  // Tuesday
	}}

	nw, err := NormalizeWeek(week)
	if err != nil {
		t.Fatalf("NormalizeWeek() failed: %v", err)
	}

	want := map[int]string{0: "2024-01-07", 2: "2024-01-09", 6: "2024-01-13"}
	for i, slot := range nw {
		date, present := want[i]
		if present != !slot.Placeholder() {
			t.Errorf("slot %d placeholder = %v, want %v", i, slot.Placeholder(), !present)
			continue
		}
		if present && slot.Day.Date != date {
			t.Errorf("slot %d date = %s, want %s", i, slot.Day.Date, date)
		}
	}
}

func TestNormalizeWeek_Empty(t *testing.T) {
	nw, err := NormalizeWeek(models.Week{})
	if err != nil {
		t.Fatalf("NormalizeWeek() failed: %v", err)
	}
	for i, slot := range nw {
		if !slot.Placeholder() {
			t.Errorf("slot %d should be a placeholder", i)
		}
	}
}

func TestNormalizeWeek_Idempotent(t *testing.T) {
	week := models.Week{ContributionDays: []models.ContributionDay{
		day("2024-03-01", models.LevelThirdQuartile),
		day("2024-02-26", models.LevelNone),
	}}

	first, err := NormalizeWeek(week)
	if err != nil {
		t.Fatalf("NormalizeWeek() failed: %v", err)
	}
	second, err := NormalizeWeek(first.Days())
	if err != nil {
		t.Fatalf("NormalizeWeek() on round trip failed: %v", err)
	}

	for i := range first {
		if first[i].Placeholder() != second[i].Placeholder() {
			t.Fatalf("slot %d placeholder changed on round trip", i)
		}
		if !first[i].Placeholder() && *first[i].Day != *second[i].Day {
			t.Errorf("slot %d = %+v, want %+v", i, *second[i].Day, *first[i].Day)
		}
	}
	if got := len(second.Days().ContributionDays); got != 2 {
		t.Errorf("round trip has %d days, want 2", got)
	}
}

func TestNormalizeWeek_Errors(t *testing.T) {
	tests := []struct {
		name    string
		days    []models.ContributionDay
		wantErr error
	}{
		{
			name:    "malformed date",
			days:    []models.ContributionDay{day("not-a-date", models.LevelNone)},
			wantErr: ErrMalformedDate,
		},
		{
			name:    "empty date",
			days:    []models.ContributionDay{day("", models.LevelNone)},
			wantErr: ErrMalformedDate,
		},
		{
			name: "same weekday twice",
			days: []models.ContributionDay{
				day("2024-01-07", models.LevelNone),
				day("2024-01-14", models.LevelNone),
			},
			wantErr: ErrDuplicateWeekday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeWeek(models.Week{ContributionDays: tt.days})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NormalizeWeek() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize_PreservesLengthAndOrder(t *testing.T) {
	start := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	cal := buildCalendar(start, 52)
	// partial edges like the API returns
	cal.Weeks[0].ContributionDays = cal.Weeks[0].ContributionDays[4:]
	cal.Weeks[51].ContributionDays = cal.Weeks[51].ContributionDays[:2]

	weeks, err := Normalize(cal)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if len(weeks) != len(cal.Weeks) {
		t.Fatalf("Normalize() returned %d weeks, want %d", len(weeks), len(cal.Weeks))
	}

	present := 0
	for i, nw := range weeks {
		if len(nw) != models.DaysPerWeek {
			t.Fatalf("week %d has %d slots", i, len(nw))
		}
		for _, slot := range nw {
			if slot.Placeholder() {
				continue
			}
			present++
			if slot.Day.ContributionCount != 1 {
				t.Errorf("week %d: contribution count changed to %d", i, slot.Day.ContributionCount)
			}
		}
		// first present day of every week comes from the matching input week
		if first, ok := cal.Weeks[i].FirstDay(); ok {
			wd, _ := first.Weekday()
			if nw[wd].Day == nil || nw[wd].Day.Date != first.Date {
				t.Errorf("week %d out of order", i)
			}
		}
	}

	want := 0
	for _, w := range cal.Weeks {
		want += len(w.ContributionDays)
	}
	if present != want {
		t.Errorf("present days = %d, want %d", present, want)
	}
}

func TestNormalize_ErrorMentionsWeek(t *testing.T) {
	cal := models.Calendar{Weeks: []models.Week{
		{ContributionDays: []models.ContributionDay{day("2024-01-07", models.LevelNone)}},
		{ContributionDays: []models.ContributionDay{day("2024-13-40", models.LevelNone)}},
	}}

	weeks, err := Normalize(cal)
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("Normalize() error = %v, want %v", err, ErrMalformedDate)
	}
	if weeks != nil {
		t.Errorf("Normalize() returned %d weeks on error", len(weeks))
	}
	if got := err.Error(); got[:6] != "week 1" {
		t.Errorf("error %q should start with the week index", got)
	}
}
