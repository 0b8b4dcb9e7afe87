package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/contribgrid/internal/constants"
)

// ContributionLevel is the quartile bucket GitHub assigns to a day
type ContributionLevel string

const (
	LevelNone           ContributionLevel = "NONE"
	LevelFirstQuartile  ContributionLevel = "FIRST_QUARTILE"
	LevelSecondQuartile ContributionLevel = "SECOND_QUARTILE"
	LevelThirdQuartile  ContributionLevel = "THIRD_QUARTILE"
	LevelFourthQuartile ContributionLevel = "FOURTH_QUARTILE"
)

// DaysPerWeek is the number of slots in a normalized week
const DaysPerWeek = 7

// ContributionDay is a single day of the contribution calendar
type ContributionDay struct {
	Date              string            `json:"date"`              // calendar date, YYYY-MM-DD
	ContributionCount int               `json:"contributionCount"` // number of contributions on that day
	Color             string            `json:"color"`             // color hint from the API, not used for rendering
	ContributionLevel ContributionLevel `json:"contributionLevel"`
}

// Time parses the day's date
func (d ContributionDay) Time() (time.Time, error) {
	return time.Parse(constants.DateFormat, d.Date)
}

// Weekday returns the day's weekday (Sunday = 0)
func (d ContributionDay) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return 0, fmt.Errorf("invalid contribution date %q: %w", d.Date, err)
	}
	return t.Weekday(), nil
}

// Week holds the days the API grouped together. It may be partial and unsorted.
type Week struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// Calendar is a user's contribution calendar, weeks in chronological order
type Calendar struct {
	TotalContributions int    `json:"totalContributions"`
	Weeks              []Week `json:"weeks"`
}

// DaySlot is one weekday position of a normalized week
type DaySlot struct {
	Weekday time.Weekday
	Day     *ContributionDay
}

// Placeholder reports whether the slot has no underlying day
func (s DaySlot) Placeholder() bool {
	return s.Day == nil
}

// Level returns the slot's contribution level, or "" for placeholders
func (s DaySlot) Level() ContributionLevel {
	if s.Day == nil {
		return ""
	}
	return s.Day.ContributionLevel
}

// NormalizedWeek has exactly one slot per weekday; slot i is weekday i.
type NormalizedWeek [DaysPerWeek]DaySlot

// Days converts the week back into a Week holding only the present days
func (w NormalizedWeek) Days() Week {
	var week Week
	for _, slot := range w {
		if !slot.Placeholder() {
			week.ContributionDays = append(week.ContributionDays, *slot.Day)
		}
	}
	return week
}

// FirstDay returns the first present day of the week in API order
func (w Week) FirstDay() (ContributionDay, bool) {
	if len(w.ContributionDays) == 0 {
		return ContributionDay{}, false
	}
	return w.ContributionDays[0], true
}
