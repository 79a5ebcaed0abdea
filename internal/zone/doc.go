// Package zone converts instants into the wall clock of a named IANA
// timezone.
//
// The Converter interface exists so the clock engine can be tested with a
// fake; the production Resolver wraps time.LoadLocation with a cache and
// degrades unknown ids to the system's local zone instead of failing the
// clock.
package zone
