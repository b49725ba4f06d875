package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/inspion/internal/model"
)

func TestCalculateTotalPriority_MatchesCappedSum(t *testing.T) {
	for _, i := range model.Levels() {
		for _, u := range model.Levels() {
			want := min(int(i)+int(u), model.MaxTotalPriority)
			assert.Equal(t, want, model.CalculateTotalPriority(i, u), "importance=%d urgency=%d", i, u)
		}
	}
}

func TestCalculateTotalPriority_OutOfRangeClamps(t *testing.T) {
	tests := []struct {
		name       string
		importance model.Level
		urgency    model.Level
		want       int
	}{
		{"both too high", 5, 5, 4},
		{"negative", -3, 0, 0},
		{"mixed", -1, 2, 1},
		{"one over", 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CalculateTotalPriority(tt.importance, tt.urgency))
		})
	}
}

func TestPriorityStatusAndColor(t *testing.T) {
	tests := []struct {
		total int
		level model.PriorityLevel
		color string
	}{
		{4, model.PriorityVeryHigh, "#ff4444"},
		{3, model.PriorityHigh, "#ff8800"},
		{2, model.PriorityMedium, "#ffcc00"},
		{1, model.PriorityLow, "#88cc00"},
		{0, model.PriorityVeryLow, "#44aa44"},
		{5, model.PriorityUnknown, "#cccccc"},
		{-1, model.PriorityUnknown, "#cccccc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, model.PriorityStatus(tt.total), "total=%d", tt.total)
		assert.Equal(t, tt.color, model.PriorityColor(tt.total), "total=%d", tt.total)
		assert.Equal(t, tt.color, tt.level.Color(), "level=%s", tt.level)
	}
}

func TestPriorityLevels_AllValid(t *testing.T) {
	levels := model.PriorityLevels()
	assert.Len(t, levels, 5)
	for _, l := range levels {
		assert.True(t, l.Valid())
	}
	assert.False(t, model.PriorityUnknown.Valid())
}
