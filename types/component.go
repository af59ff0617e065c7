package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// ComponentID is the world-local numeric key of a registered component type.
// IDs index into ComponentSet masks, so they are capped by MaxComponentTypes.
type ComponentID int

var ErrComponentSchemaMismatch = eris.New("component schema does not match target schema")

// Component is the interface a user struct implements to become a component
// type. Components are plain data; Name is the only behavior they carry, and
// it must be unique across the world.
type Component interface {
	// Name returns the name of the component.
	Name() string
}

// ComponentMetadata wraps a user-defined Component struct with the hooks the
// engine needs internally: a stable ID, a JSON schema, and codec access.
type ComponentMetadata interface { //revive:disable-line:exported
	// SetID sets the ID of this component. It must only be set once.
	SetID(ComponentID) error
	// ID returns the ID of the component.
	ID() ComponentID
	// New returns the marshaled bytes of the default value for the component struct.
	New() ([]byte, error)

	Encode(any) ([]byte, error)
	Decode([]byte) (any, error)
	GetSchema() []byte
	ValidateAgainstSchema(targetSchema []byte) error

	Component
}

// SerializeComponentSchema reflects the JSON schema of a component value.
func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

// IsSchemaValid reports whether two serialized schemas are structurally equal.
func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
