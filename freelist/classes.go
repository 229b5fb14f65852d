package freelist

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// SizeClass names a lower bound on block size, purely for labeling
// Reserve/Release log output (e.g. "small", "medium", "huge").
type SizeClass struct {
	Name     string `yaml:"name"`
	MinBytes int64  `yaml:"min_bytes"`
}

// classesDocument is the top-level shape LoadClasses expects:
//
//	classes:
//	  - name: small
//	    min_bytes: 0
//	  - name: large
//	    min_bytes: 1048576
type classesDocument struct {
	Classes []SizeClass `yaml:"classes"`
}

// LoadClasses reads a YAML document of size classes from r. It does not
// sort or validate the result; classify tolerates classes in any order.
func LoadClasses(r io.Reader) ([]SizeClass, error) {
	var doc classesDocument

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return doc.Classes, nil
}
