package clock

// HandAngles holds the analog hand positions in degrees, each in [0, 360).
type HandAngles struct {
	// Hour is the hour hand angle; one full circle per 12-hour cycle.
	Hour float64
	// Minute is the minute hand angle; it creeps with the passing seconds.
	Minute float64
	// Second is the second hand angle.
	Second float64
}

// HandAngles derives the analog hand positions from the raw fields. The
// hour hand uses the 24-hour value modulo 12 so it sweeps identically in
// both display formats.
func (tv TimeValue) HandAngles() HandAngles {
	return HandAngles{
		Hour:   float64(tv.RawHours%12)*30 + float64(tv.RawMinutes)*0.5, // 360°/12h, 30°/60min
		Minute: float64(tv.RawMinutes)*6 + float64(tv.RawSeconds)*0.1,   // 360°/60min, 6°/60s
		Second: float64(tv.RawSeconds) * 6,                              // 360°/60s
	}
}
