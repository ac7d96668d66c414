// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/matrix"
)

// SystemFile is the YAML layout of a stored system.
type SystemFile struct {
	// Name is an optional label carried into reports and history.
	Name string `yaml:"name,omitempty"`
	// Rows are the augmented rows, constants last.
	Rows [][]float64 `yaml:"rows"`
}

// DecodeYAML reads one SystemFile document from r and validates its shape.
//
// Errors:
//   - YAML syntax/type errors.
//   - ErrEmptySystem for a document without rows.
//   - matrix.ErrShapeMismatch / ErrNaNInf from validation.
func DecodeYAML(r io.Reader) (*matrix.Dense, SystemFile, error) {
	var sf SystemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if err == io.EOF {
			return nil, sf, ErrEmptySystem
		}
		return nil, sf, fmt.Errorf("console: decode yaml: %w", err)
	}
	if len(sf.Rows) == 0 {
		return nil, sf, ErrEmptySystem
	}

	m, err := matrix.NewFromRows(sf.Rows)
	if err != nil {
		return nil, sf, fmt.Errorf("console: %w", err)
	}

	return m, sf, nil
}

// EncodeYAML writes m as a SystemFile document.
func EncodeYAML(w io.Writer, name string, m *matrix.Dense) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SystemFile{Name: name, Rows: m.ToRows()}); err != nil {
		return fmt.Errorf("console: encode yaml: %w", err)
	}

	return enc.Close()
}
