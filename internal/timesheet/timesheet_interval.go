package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxShiftHours caps a single interval's duration.
const MaxShiftHours = 16.0

var intervalPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?-(\d{1,2})(?::(\d{2}))?$`)

type Interval struct {
	StartTime string
	EndTime   string
	Hours     float64
}

// ParseInterval converts a human-entered shift string ("10-18", "9:30-17:30",
// "22-06") into a duration. Hour-only endpoints normalize to :00. An end at
// or before the start is read as crossing midnight. Returns nil for anything
// unparseable or longer than MaxShiftHours; empty input is "no interval",
// also nil.
func ParseInterval(raw string) *Interval {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	m := intervalPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil
	}

	startMin, ok := toMinutes(m[1], m[2])
	if !ok {
		return nil
	}
	endMin, ok := toMinutes(m[3], m[4])
	if !ok {
		return nil
	}

	// overnight shift: roll the end into the next day
	if endMin <= startMin {
		endMin += 24 * 60
	}

	duration := float64(endMin-startMin) / 60
	if duration > MaxShiftHours {
		return nil
	}

	return &Interval{
		StartTime: formatTime(m[1], m[2]),
		EndTime:   formatTime(m[3], m[4]),
		Hours:     round2(duration),
	}
}

func toMinutes(hourPart, minutePart string) (int, bool) {
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour > 23 {
		return 0, false
	}

	minute := 0
	if minutePart != "" {
		minute, err = strconv.Atoi(minutePart)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}

func formatTime(hourPart, minutePart string) string {
	hour, _ := strconv.Atoi(hourPart)
	minute := 0
	if minutePart != "" {
		minute, _ = strconv.Atoi(minutePart)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
