package heatmap

import (
	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/models"
)

// Color maps a contribution level to its hex color. Placeholder slots and
// unrecognized levels get unknown.
func Color(level models.ContributionLevel, unknown string) string {
	switch level {
	case models.LevelNone:
		return constants.ColorNone
	case models.LevelFirstQuartile:
		return constants.ColorFirstQuartile
	case models.LevelSecondQuartile:
		return constants.ColorSecondQuartile
	case models.LevelThirdQuartile:
		return constants.ColorThirdQuartile
	case models.LevelFourthQuartile:
		return constants.ColorFourthQuartile
	default:
		return unknown
	}
}
