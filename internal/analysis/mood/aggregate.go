package mood

import (
	"math"
	"time"

	"github.com/Davooood90/rambl/backend/internal/model/insight"
)

// NeutralIntensity is the midpoint default for days without sessions.
const NeutralIntensity = 50

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// SessionSample is the slice of a session record the trend chart needs.
type SessionSample struct {
	Timestamp time.Time
	Intensity *int
}

// Aggregate builds the trailing 7-day trend ending on now's weekday.
// Sessions bucket by the day-of-week of their timestamp, not by calendar
// date: a Tuesday session from three weeks ago lands in the same bucket as
// yesterday's. Bucket values are the integer average (round half up) of the
// intensities present; empty buckets default to NeutralIntensity.
func Aggregate(sessions []SessionSample, now time.Time) []insight.MoodSample {
	byDay := make(map[string][]int, 7)
	for _, s := range sessions {
		if s.Intensity == nil {
			continue
		}
		byDay[labelFor(s.Timestamp)] = append(byDay[labelFor(s.Timestamp)], *s.Intensity)
	}

	samples := make([]insight.MoodSample, 0, 7)
	for _, day := range window(now) {
		value := NeutralIntensity
		if values := byDay[day]; len(values) > 0 {
			sum := 0
			for _, v := range values {
				sum += v
			}
			value = int(math.Round(float64(sum) / float64(len(values))))
		}
		samples = append(samples, insight.MoodSample{Day: day, Value: value})
	}
	return samples
}

// window rotates the Mon-Sun labels so the sequence ends on now's weekday.
func window(now time.Time) []string {
	end := mondayIndex(now)
	rotated := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		rotated = append(rotated, dayLabels[(end+i)%7])
	}
	return rotated
}

func labelFor(t time.Time) string {
	return dayLabels[mondayIndex(t)]
}

// mondayIndex maps time.Weekday (Sunday=0) onto the Mon-first label array.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
