package gridtable

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseDataset parses the serialized dataset input.
//
// An empty or whitespace-only input is treated like the literal "[]"
// and yields an empty dataset. Parse failures wrap ErrMalformedInput.
func ParseDataset(text string) (Dataset, error) {
	if strings.TrimSpace(text) == "" {
		return Dataset{}, nil
	}
	var dataset Dataset
	err := json.Unmarshal([]byte(text), &dataset)
	if err != nil {
		return nil, fmt.Errorf("%w: dataset: %v", ErrMalformedInput, err)
	}
	return dataset, nil
}

// ParseSchema parses the serialized schema input.
//
// An empty or whitespace-only input is treated like the literal "[]"
// and yields an empty schema. Column descriptors must be objects with
// only the fields key, name, and default. Parse and validation
// failures wrap ErrMalformedInput.
func ParseSchema(text string) (Schema, error) {
	if strings.TrimSpace(text) == "" {
		return Schema{}, nil
	}
	var schema Schema
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&schema)
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrMalformedInput, err)
	}
	if err = schema.Validate(); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrMalformedInput, err)
	}
	return schema, nil
}
