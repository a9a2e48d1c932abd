package utils

import (
	"github.com/google/uuid"
)

// IDHookFunc is the signature of the NewID test hook. It returns an ID and a
// boolean indicating whether to override the default generation.
type IDHookFunc func(prefix string) (id string, override bool)

// NewIDHook is a package-level variable that tests can set to override NewID.
var NewIDHook IDHookFunc

// NewID returns a prefixed random identifier, e.g. "booking_6b1f...".
// The prefix names the entity kind so IDs stay recognizable in stored state.
func NewID(prefix string) string {
	if NewIDHook != nil {
		if id, override := NewIDHook(prefix); override {
			return id
		}
	}
	return prefix + "_" + uuid.NewString()
}
