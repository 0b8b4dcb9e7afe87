package heatmap

import (
	"testing"

	"github.com/julianstephens/contribgrid/internal/models"
)

func TestColor(t *testing.T) {
	tests := []struct {
		level    models.ContributionLevel
		unknown  string
		expected string
	}{
		{models.LevelNone, "#000000", "#161b22"},
		{models.LevelFirstQuartile, "#000000", "#0e4429"},
		{models.LevelSecondQuartile, "#000000", "#006d32"},
		{models.LevelThirdQuartile, "#000000", "#26a641"},
		{models.LevelFourthQuartile, "#000000", "#39d353"},
		{"", "#000000", "#000000"},
		{"FIFTH_QUARTILE", "#ff00ff", "#ff00ff"},
		{"none", "#123456", "#123456"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := Color(tt.level, tt.unknown); got != tt.expected {
				t.Errorf("Color(%q, %q) = %q, want %q", tt.level, tt.unknown, got, tt.expected)
			}
		})
	}
}
