package types

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// EntityID is the slot index of an entity. Slots are reused after an entity
// is destroyed, so an EntityID alone does not identify a live entity.
type EntityID uint32

// Generation is a per-slot recycle counter. It is bumped every time a slot is
// handed out again, which is what keeps stale Entity handles from aliasing the
// slot's new occupant.
type Generation uint32

// Entity is a handle to an entity: the slot index plus the generation the
// slot had when the handle was issued. Two Entity values refer to the same
// live entity only when both fields match and the world still reports the
// slot as allocated.
type Entity struct {
	ID         EntityID   `json:"id"`
	Generation Generation `json:"generation"`
}

const badEntityID EntityID = math.MaxUint32

// BadEntity is the sentinel returned by operations that have no entity to
// return (for example, every create on a null world). It is never alive.
var BadEntity = Entity{ID: badEntityID}

// IsBad reports whether e is the sentinel entity.
func (e Entity) IsBad() bool {
	return e.ID == badEntityID
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Generation)
}

type EntityStateResponse []EntityStateElement

// EntityStateElement is the debug-dump shape for a single entity: its handle
// plus the raw JSON of every component it currently holds, keyed by component
// name.
type EntityStateElement struct {
	Entity     Entity                     `json:"entity"`
	Components map[string]json.RawMessage `json:"components"`
}
