package loom

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/types"
)

// DumpState returns a debug snapshot of the world: every live entity plus the
// JSON encoding of each component it holds, keyed by component name. Entities
// are ordered by slot index.
func (w *world) DumpState() (types.EntityStateResponse, error) {
	components := w.componentManager.GetComponents()
	sort.Slice(components, func(i, j int) bool {
		return components[i].ID() < components[j].ID()
	})

	resp := types.EntityStateResponse{}
	var dumpErr error
	w.stateManager.EachEntity(func(e types.Entity) bool {
		element := types.EntityStateElement{
			Entity:     e,
			Components: map[string]json.RawMessage{},
		}
		for _, md := range components {
			value, ok := w.stateManager.GetComponent(md, e)
			if !ok {
				continue
			}
			encoded, err := md.Encode(value)
			if err != nil {
				dumpErr = eris.Wrap(err,
					fmt.Sprintf("failed to encode component %q on %s", md.Name(), e))
				return false
			}
			element.Components[md.Name()] = encoded
		}
		resp = append(resp, element)
		return true
	})
	if dumpErr != nil {
		return nil, dumpErr
	}
	return resp, nil
}
