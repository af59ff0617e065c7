package component

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/types"
)

var (
	ErrComponentNotRegistered = eris.New("component not registered")
	ErrComponentCapacity      = eris.New("component type capacity exceeded")
)

// Manager is the registry of component types for a single world. It hands out
// ComponentIDs, enforces name uniqueness, and keeps the schema recorded at
// first registration so a later registration of a structurally different type
// under the same name is caught instead of silently aliased.
type Manager struct {
	registeredComponents map[string]types.ComponentMetadata
	schemas              map[string][]byte
	nextComponentID      types.ComponentID
}

// NewManager creates a new component manager.
func NewManager() *Manager {
	return &Manager{
		registeredComponents: make(map[string]types.ComponentMetadata),
		schemas:              make(map[string][]byte),
		nextComponentID:      1,
	}
}

// RegisterComponent registers a component type with the manager. There can
// only be one component with a given name, declared by the user via the
// Name() method. Registering a different type under an already-used name
// returns a schema mismatch error.
func (m *Manager) RegisterComponent(compMetadata types.ComponentMetadata) error {
	if existing, ok := m.registeredComponents[compMetadata.Name()]; ok {
		if err := compMetadata.ValidateAgainstSchema(m.schemas[existing.Name()]); err != nil {
			if eris.Is(err, types.ErrComponentSchemaMismatch) {
				return eris.Wrap(err,
					fmt.Sprintf("component %q is already registered with a different schema", compMetadata.Name()),
				)
			}
			return eris.Wrap(err, "error when validating component schema against registered schema")
		}
		// Same name, same schema: re-registration of the same type is a no-op
		// as long as the ID stays put.
		return compMetadata.SetID(existing.ID())
	}

	if int(m.nextComponentID) >= types.MaxComponentTypes {
		return eris.Wrap(ErrComponentCapacity,
			fmt.Sprintf("cannot register component %q", compMetadata.Name()))
	}

	if err := compMetadata.SetID(m.nextComponentID); err != nil {
		return err
	}
	m.registeredComponents[compMetadata.Name()] = compMetadata
	m.schemas[compMetadata.Name()] = compMetadata.GetSchema()
	m.nextComponentID++

	return nil
}

// GetComponents returns a list of all registered components.
// Note: The order of the components in the list is not deterministic.
func (m *Manager) GetComponents() []types.ComponentMetadata {
	registeredComponents := make([]types.ComponentMetadata, 0, len(m.registeredComponents))
	for _, comp := range m.registeredComponents {
		registeredComponents = append(registeredComponents, comp)
	}
	return registeredComponents
}

// GetComponentByName returns the component metadata for the given component name.
func (m *Manager) GetComponentByName(name string) (types.ComponentMetadata, error) {
	c, ok := m.registeredComponents[name]
	if !ok {
		return nil, eris.Wrap(ErrComponentNotRegistered, fmt.Sprintf("component %q is not registered", name))
	}
	return c, nil
}
