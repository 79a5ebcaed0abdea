package clock

import (
	"fmt"
	"time"
)

// Period distinguishes the halves of the 12-hour clock.
type Period string

const (
	// PeriodNone marks 24-hour values, which carry no AM/PM half.
	PeriodNone Period = ""
	// PeriodAM covers raw hours 0 through 11.
	PeriodAM Period = "AM"
	// PeriodPM covers raw hours 12 through 23.
	PeriodPM Period = "PM"
)

// TimeValue is an immutable snapshot of one wall-clock second.
//
// The Raw fields keep the unformatted 0-based values used for hand angles
// and alarm matching; Hours, Period and the *Text fields carry the 12/24
// hour display rendering. A TimeValue is produced fresh on every tick and
// never mutated afterwards.
type TimeValue struct {
	// RawHours is the 24-hour clock hour, 0-23, independent of display format.
	RawHours int
	// RawMinutes is the minute within the hour, 0-59.
	RawMinutes int
	// RawSeconds is the second within the minute, 0-59.
	RawSeconds int
	// Hours is the display hour: 0-23 in 24-hour mode, 1-12 in 12-hour mode.
	Hours int
	// Period is AM or PM in 12-hour mode and empty in 24-hour mode.
	Period Period
	// DayName is the English weekday name, e.g. "Monday".
	DayName string
	// MonthName is the English month name, e.g. "January".
	MonthName string
	// DayOfMonth is the calendar day, 1-31.
	DayOfMonth int
	// Year is the four-digit calendar year.
	Year int
	// HoursText is the zero-padded two-digit rendering of Hours.
	HoursText string
	// MinutesText is the zero-padded two-digit rendering of RawMinutes.
	MinutesText string
	// SecondsText is the zero-padded two-digit rendering of RawSeconds.
	SecondsText string
}

// NewTimeValue derives the snapshot for t in the requested display format.
// In 12-hour mode midnight and noon render as 12, never 0.
func NewTimeValue(t time.Time, use24Hour bool) TimeValue {
	rawHours, rawMinutes, rawSeconds := t.Clock()

	hours := rawHours
	period := PeriodNone

	if !use24Hour {
		period = PeriodAM
		if rawHours >= 12 {
			period = PeriodPM
		}

		hours = rawHours % 12
		if hours == 0 {
			hours = 12
		}
	}

	return TimeValue{
		RawHours:    rawHours,
		RawMinutes:  rawMinutes,
		RawSeconds:  rawSeconds,
		Hours:       hours,
		Period:      period,
		DayName:     t.Weekday().String(),
		MonthName:   t.Month().String(),
		DayOfMonth:  t.Day(),
		Year:        t.Year(),
		HoursText:   pad(hours),
		MinutesText: pad(rawMinutes),
		SecondsText: pad(rawSeconds),
	}
}

// String renders the snapshot as HH:MM:SS, with the period appended in
// 12-hour mode.
func (tv TimeValue) String() string {
	if tv.Period == PeriodNone {
		return tv.HoursText + ":" + tv.MinutesText + ":" + tv.SecondsText
	}

	return tv.HoursText + ":" + tv.MinutesText + ":" + tv.SecondsText + " " + string(tv.Period)
}

// pad renders v as a two-digit zero-padded string.
func pad(v int) string {
	return fmt.Sprintf("%02d", v)
}
