package nitro

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind classifies the shape of a document node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

// Document is a read-only view over a decoded NITRO response body. The same
// logical query may answer with a single mapping or a sequence of mappings
// depending on the object type, so extraction is defined over both shapes.
type Document struct {
	v any
}

// Parse decodes a JSON body into a Document.
func Parse(data []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Document{}, err
	}
	return Document{v: v}, nil
}

// Kind reports the shape of this node.
func (d Document) Kind() Kind {
	switch d.v.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

// Narrow descends into the sub-document the API nests under the requested
// object type name.
func (d Document) Narrow(objectType string) (Document, error) {
	m, ok := d.v.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("response root is not an object")
	}
	v, ok := m[objectType]
	if !ok {
		return Document{}, &FieldNotFoundError{Field: objectType}
	}
	return Document{v: v}, nil
}

// Items returns the elements of a sequence, or the document itself as a
// single item when it is a mapping. Callers iterate the same way over both
// response shapes.
func (d Document) Items() []Document {
	switch t := d.v.(type) {
	case []any:
		items := make([]Document, len(t))
		for i, v := range t {
			items[i] = Document{v: v}
		}
		return items
	case nil:
		return nil
	default:
		return []Document{d}
	}
}

// Field looks up a key in a mapping node.
func (d Document) Field(name string) (Document, error) {
	m, ok := d.v.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("cannot read field %q: node is not an object", name)
	}
	v, ok := m[name]
	if !ok {
		return Document{}, &FieldNotFoundError{Field: name}
	}
	return Document{v: v}, nil
}

// StringField is Field followed by String.
func (d Document) StringField(name string) (string, error) {
	f, err := d.Field(name)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// FloatField is Field followed by Float.
func (d Document) FloatField(name string) (float64, error) {
	f, err := d.Field(name)
	if err != nil {
		return 0, err
	}
	return f.Float()
}

// String renders a scalar node as text. JSON numbers and booleans are
// formatted the way the appliance would have sent them as strings.
func (d Document) String() string {
	switch t := d.v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Float coerces a scalar node to a number. The API reports most counters as
// quoted strings, so numeric strings are accepted.
func (d Document) Float() (float64, error) {
	switch t := d.v.(type) {
	case float64:
		return t, nil
	case string:
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", t)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("value %v is not numeric", d.v)
	}
}

// Bool coerces a scalar node to a boolean, accepting both JSON booleans and
// the quoted forms the config API uses.
func (d Document) Bool() (bool, error) {
	switch t := d.v.(type) {
	case bool:
		return t, nil
	case string:
		v, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("value %q is not a boolean", t)
		}
		return v, nil
	default:
		return false, fmt.Errorf("value %v is not a boolean", d.v)
	}
}

// Dump renders the document as indented JSON for diagnostic output.
func (d Document) Dump() string {
	data, err := json.MarshalIndent(d.v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", d.v)
	}
	return string(data)
}
