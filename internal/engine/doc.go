// Package engine implements the clock core: drift-corrected time reads,
// timezone conversion, 12/24-hour display fields, analog hand angles, and
// the self-correcting one-second tick scheduler.
//
// The scheduler never assumes a fixed step. Each cycle it measures the
// time remaining until the next wall-clock second boundary and arms the
// timer for exactly that long, so its error stays bounded by single-call
// jitter. Independently, once per sync window it compares real elapsed
// time against the window length and folds the difference into a running
// correction, which absorbs clock-source jumps the per-tick alignment
// cannot detect.
package engine
