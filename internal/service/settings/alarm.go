package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
	"github.com/Haseeb-Arshad/chime/internal/repository/kv"
)

// LoadAlarm reads the persisted alarm. A missing key returns (nil, nil);
// JSON that no longer parses or validates returns an error.
func LoadAlarm(store kv.Store) (*alarm.Alarm, error) {
	raw, err := store.Get(KeyAlarm)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("read alarm: %w", err)
	}

	var stored alarm.Alarm
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode alarm: %w", err)
	}

	if err := stored.Validate(); err != nil {
		return nil, err
	}

	return &stored, nil
}

// SaveAlarm writes a as JSON under the alarm key.
func SaveAlarm(store kv.Store, a *alarm.Alarm) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode alarm: %w", err)
	}

	if err := store.Set(KeyAlarm, string(data)); err != nil {
		return fmt.Errorf("write alarm: %w", err)
	}

	return nil
}

// RemoveAlarm drops the persisted alarm. Removing a missing alarm is fine.
func RemoveAlarm(store kv.Store) error {
	if err := store.Remove(KeyAlarm); err != nil {
		return fmt.Errorf("remove alarm: %w", err)
	}

	return nil
}
