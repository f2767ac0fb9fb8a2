package gridtable

import "fmt"

// Column describes a single table column.
type Column struct {
	// Key identifies the row field rendered in this column.
	Key string `json:"key" yaml:"key"`

	// Name is the display label shown in the header row.
	Name string `json:"name" yaml:"name"`

	// Default is rendered when a row has no value for Key
	// or the value is nil.
	Default any `json:"default" yaml:"default"`
}

// Schema is an ordered sequence of column descriptors.
// The order of the columns determines the visual column order.
type Schema []Column

// Keys returns the field keys of the schema columns in column order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, col := range s {
		keys[i] = col.Key
	}
	return keys
}

// Names returns the display labels of the schema columns in column order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Validate returns an error if any column has an empty key
// or if two columns share the same key.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i, col := range s {
		if col.Key == "" {
			return fmt.Errorf("schema column %d has an empty key", i)
		}
		if _, ok := seen[col.Key]; ok {
			return fmt.Errorf("schema column %d has duplicate key %q", i, col.Key)
		}
		seen[col.Key] = struct{}{}
	}
	return nil
}
