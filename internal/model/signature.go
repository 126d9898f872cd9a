package model

import (
	"fmt"
	"sort"

	"ocrflow/pkg/serrors"
)

// Column types used in model signatures.
const (
	TypeBinary  = "binary"
	TypeString  = "string"
	TypeLong    = "long"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
)

// ColSpec is one named, typed column of a signature.
type ColSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Signature pins the input and output schema a model was logged with.
type Signature struct {
	Inputs  []ColSpec `json:"inputs"`
	Outputs []ColSpec `json:"outputs"`
}

// DefaultSignature is the schema of the standard OCR contract: one binary
// image column in, one string text column out.
func DefaultSignature() Signature {
	return Signature{
		Inputs:  []ColSpec{{Name: ImageColumn, Type: TypeBinary}},
		Outputs: []ColSpec{{Name: TextColumn, Type: TypeString}},
	}
}

// Validate rejects signatures with unnamed or unknown-typed columns.
func (s Signature) Validate() error {
	for _, col := range append(append([]ColSpec{}, s.Inputs...), s.Outputs...) {
		if col.Name == "" {
			return serrors.With(serrors.ErrInvalid, "signature column without a name")
		}

		switch col.Type {
		case TypeBinary, TypeString, TypeLong, TypeDouble, TypeBoolean:
		default:
			return serrors.With(serrors.ErrInvalid, "signature column %q has unknown type %q", col.Name, col.Type)
		}
	}

	return nil
}

// InferSignature derives a signature from a sample input table and the output
// record produced for it. Input columns keep the table order, output columns
// are sorted by name so inference is deterministic.
func InferSignature(input Table, output map[string]any) (Signature, error) {
	if len(input.Rows) == 0 {
		return Signature{}, serrors.With(serrors.ErrInvalid, "cannot infer a signature from an empty table")
	}

	row := input.Rows[0]
	if len(row) != len(input.Columns) {
		return Signature{}, serrors.With(serrors.ErrInvalid,
			"sample row has %d values for %d columns", len(row), len(input.Columns))
	}

	sig := Signature{
		Inputs:  make([]ColSpec, 0, len(input.Columns)),
		Outputs: make([]ColSpec, 0, len(output)),
	}

	for i, name := range input.Columns {
		colType, err := specType(row[i])
		if err != nil {
			return Signature{}, serrors.Wrap(serrors.ErrInvalid, err, "input column %q", name)
		}

		sig.Inputs = append(sig.Inputs, ColSpec{Name: name, Type: colType})
	}

	names := make([]string, 0, len(output))
	for name := range output {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		colType, err := specType(output[name])
		if err != nil {
			return Signature{}, serrors.Wrap(serrors.ErrInvalid, err, "output column %q", name)
		}

		sig.Outputs = append(sig.Outputs, ColSpec{Name: name, Type: colType})
	}

	return sig, nil
}

// specType maps a Go sample value to its signature column type.
func specType(v any) (string, error) {
	switch v.(type) {
	case []byte:
		return TypeBinary, nil
	case string:
		return TypeString, nil
	case int, int32, int64:
		return TypeLong, nil
	case float32, float64:
		return TypeDouble, nil
	case bool:
		return TypeBoolean, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
