package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAngles(t *testing.T) {
	tests := []struct {
		name                 string
		hour, minute, second int
		wantHour             float32
		wantMinute           float32
		wantSecond           float32
	}{
		{"midnight", 0, 0, 0, 0, 0, 0},
		{"three o'clock", 3, 0, 0, -90, 0, 0},
		{"half past six", 6, 30, 0, -195, -180, 0},
		{"quarter to twelve", 11, 45, 15, -352.5, -270, -90},
		{"afternoon wraps to twelve-hour dial", 15, 0, 0, -90, 0, 0},
		{"one second", 0, 0, 1, 0, 0, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, s := HandAngles(tt.hour, tt.minute, tt.second)
			assert.InDelta(t, tt.wantHour, h, 1e-4)
			assert.InDelta(t, tt.wantMinute, m, 1e-4)
			assert.InDelta(t, tt.wantSecond, s, 1e-4)
		})
	}
}

func TestHourHandAdvancesWithMinutes(t *testing.T) {
	atHour, _, _ := HandAngles(2, 0, 0)
	halfPast, _, _ := HandAngles(2, 30, 0)
	assert.InDelta(t, atHour-15, halfPast, 1e-4, "hour hand moves half a step by half past")
}

func TestSystemClockRange(t *testing.T) {
	h, m, s := SystemClock()
	assert.GreaterOrEqual(t, h, 0)
	assert.Less(t, h, 24)
	assert.GreaterOrEqual(t, m, 0)
	assert.Less(t, m, 60)
	assert.GreaterOrEqual(t, s, 0)
	assert.Less(t, s, 60)
}
