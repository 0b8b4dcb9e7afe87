package heatmap

import (
	"time"

	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/models"
)

var levelCycle = []models.ContributionLevel{
	models.LevelNone,
	models.LevelFirstQuartile,
	models.LevelSecondQuartile,
	models.LevelThirdQuartile,
	models.LevelFourthQuartile,
}

func day(date string, level models.ContributionLevel) models.ContributionDay {
	return models.ContributionDay{Date: date, ContributionLevel: level, ContributionCount: 1, Color: "#ignored"}
}

// buildCalendar returns n full weeks starting on the given Sunday
func buildCalendar(start time.Time, n int) models.Calendar {
	cal := models.Calendar{}
	d := start
	for w := 0; w < n; w++ {
		var week models.Week
		for i := 0; i < models.DaysPerWeek; i++ {
			week.ContributionDays = append(week.ContributionDays,
				day(d.Format(constants.DateFormat), levelCycle[(w+i)%len(levelCycle)]))
			cal.TotalContributions++
			d = d.AddDate(0, 0, 1)
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}
