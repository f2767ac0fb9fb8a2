package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-gridtable"
)

// resolveInput resolves a serialized table input from an inline value,
// an @file reference, "-" for stdin, or a file flag.
func resolveInput(ctx context.Context, inline, file string) (string, error) {
	if inline != "" && file != "" {
		return "", fmt.Errorf("use only one of inline value or file flag")
	}
	if file != "" {
		return readInputFile(ctx, file)
	}
	trimmed := strings.TrimSpace(inline)
	if trimmed == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "@"); ok {
		return readInputFile(ctx, rest)
	}
	return inline, nil
}

// resolveSchemaInput works like resolveInput but converts
// YAML schema files to the serialized JSON schema form.
func resolveSchemaInput(ctx context.Context, inline, file string) (string, error) {
	if file != "" {
		if ext := strings.ToLower(fs.File(file).Ext()); ext == ".yaml" || ext == ".yml" {
			text, err := readInputFile(ctx, file)
			if err != nil {
				return "", err
			}
			return yamlSchemaToJSON([]byte(text))
		}
	}
	return resolveInput(ctx, inline, file)
}

func readInputFile(ctx context.Context, path string) (string, error) {
	data, err := fs.File(path).ReadAllContext(ctx)
	if err != nil {
		return "", err
	}
	// Editors like to save JSON with a UTF-8 BOM which
	// encoding/json rejects.
	data = charset.TrimBOM(data, charset.BOMUTF8)
	return string(data), nil
}

func yamlSchemaToJSON(data []byte) (string, error) {
	var schema gridtable.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return "", fmt.Errorf("%w: schema: %v", gridtable.ErrMalformedInput, err)
	}
	if err := schema.Validate(); err != nil {
		return "", fmt.Errorf("%w: schema: %v", gridtable.ErrMalformedInput, err)
	}
	serialized, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return string(serialized), nil
}
