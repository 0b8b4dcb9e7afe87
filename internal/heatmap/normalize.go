// Package heatmap turns a contribution calendar into the colored grid
// printed by contribgrid.
package heatmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/contribgrid/internal/models"
)

var (
	// ErrMalformedDate is returned when a day's date cannot be parsed
	ErrMalformedDate = errors.New("malformed contribution date")
	// ErrDuplicateWeekday is returned when two days of a week share a weekday
	ErrDuplicateWeekday = errors.New("duplicate weekday in week")
)

// NormalizeWeek places every present day at the slot of its weekday and
// marks the remaining slots as placeholders.
func NormalizeWeek(week models.Week) (models.NormalizedWeek, error) {
	var nw models.NormalizedWeek
	for i := range nw {
		nw[i].Weekday = time.Weekday(i)
	}

	for _, day := range week.ContributionDays {
		wd, err := day.Weekday()
		if err != nil {
			return models.NormalizedWeek{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
		}
		if !nw[wd].Placeholder() {
			return models.NormalizedWeek{}, fmt.Errorf("%w: %s and %s are both %s",
				ErrDuplicateWeekday, nw[wd].Day.Date, day.Date, wd)
		}
		d := day
		nw[wd].Day = &d
	}

	return nw, nil
}

// Normalize normalizes every week of the calendar, preserving order.
func Normalize(cal models.Calendar) ([]models.NormalizedWeek, error) {
	weeks := make([]models.NormalizedWeek, 0, len(cal.Weeks))
	for i, week := range cal.Weeks {
		nw, err := NormalizeWeek(week)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", i, err)
		}
		weeks = append(weeks, nw)
	}
	return weeks, nil
}
