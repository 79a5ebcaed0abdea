package zone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	// Fall back to the embedded IANA database on hosts that ship without
	// one; a clock that cannot resolve "Asia/Tokyo" is not much of a clock.
	_ "time/tzdata"
)

// Local is the sentinel id selecting the system's local timezone.
const Local = "local"

// ErrUnknownZone reports a timezone id the IANA database cannot resolve.
var ErrUnknownZone = errors.New("unknown timezone")

// Converter maps an instant onto the wall clock of a named timezone.
//
// Implementations must always return a usable time: when the id cannot be
// resolved they pick a fallback zone and report ErrUnknownZone alongside
// it, so callers keep displaying time while surfacing the problem.
type Converter interface {
	Convert(at time.Time, id string) (time.Time, error)
}

// Resolver is the production Converter backed by time.LoadLocation.
// Lookups are cached, including failed ones, so a misconfigured id does
// not hit the database once per tick.
type Resolver struct {
	// mu protects the lookup cache.
	mu sync.Mutex
	// cache maps zone ids to loaded locations; a nil entry marks an id
	// that already failed to resolve.
	cache map[string]*time.Location
}

// NewResolver creates a Resolver with an empty lookup cache.
func NewResolver() *Resolver {
	return &Resolver{
		cache: make(map[string]*time.Location),
	}
}

// Convert returns at on the wall clock of the zone named by id. The id
// "local" (or an empty string) selects the system's local zone. Unknown
// ids degrade to the local wall clock and report ErrUnknownZone.
func (r *Resolver) Convert(at time.Time, id string) (time.Time, error) {
	if id == "" || id == Local {
		return at.In(time.Local), nil
	}

	loc := r.location(id)
	if loc == nil {
		return at.In(time.Local), fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	return at.In(loc), nil
}

// location resolves id through the cache, recording failures as nil.
func (r *Resolver) location(id string) *time.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loc, ok := r.cache[id]; ok {
		return loc
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		loc = nil
	}

	r.cache[id] = loc

	return loc
}
