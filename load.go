package pivotgrid

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aerissecure/pivotgrid/errors"
)

// LoadCellSet decodes a result from YAML or JSON and validates it.
func LoadCellSet(r io.Reader) (*CellSet, error) {
	var cs CellSet
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cs); err != nil {
		if err == io.EOF {
			return &cs, nil
		}
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "decode result")
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return &cs, nil
}

// LoadCellSetFile reads a result from a YAML or JSON file.
func LoadCellSetFile(path string) (*CellSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "open result %s", path)
	}
	defer func() { _ = f.Close() }()

	cs, err := LoadCellSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cs, nil
}
