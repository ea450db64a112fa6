package job

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load parses a job. Unknown keys are rejected.
func Load(r io.Reader) (*Params, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Params
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "job: decode")
	}

	return &p, nil
}

// LoadFile parses the job at path.
func LoadFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "job: open")
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "job: %s", path)
	}

	return p, nil
}
