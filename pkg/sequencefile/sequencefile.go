// Package sequencefile loads named integer sequences from YAML (or JSON) files.
//
// The format is:
//
//	sequences:
//	  small: [10, 20, 30]
//	  empty: []
package sequencefile

import (
	"fmt"
	"os"
	"sort"

	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"gopkg.in/yaml.v3"
)

type ErrUnknownSequence struct {
	Name string
}

func (e ErrUnknownSequence) Error() string {
	return fmt.Sprintf("unknown sequence %q", e.Name)
}

// Sequences is a set of named immutable sequences.
type Sequences map[string]indexsafe.Slice[int64]

type file struct {
	Sequences map[string][]int64 `yaml:"sequences"`
}

func Load(path string) (Sequences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (Sequences, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	result := make(Sequences, len(f.Sequences))
	for name, values := range f.Sequences {
		if name == "" {
			return nil, fmt.Errorf("a sequence with an empty name")
		}
		result[name] = indexsafe.Slice[int64](values)
	}
	return result, nil
}

func (s Sequences) Get(name string) (indexsafe.Slice[int64], error) {
	seq, ok := s[name]
	if !ok {
		return nil, ErrUnknownSequence{Name: name}
	}
	return seq, nil
}

func (s Sequences) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Sequences) Marshal() ([]byte, error) {
	f := file{Sequences: make(map[string][]int64, len(s))}
	for name, seq := range s {
		f.Sequences[name] = []int64(seq)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
