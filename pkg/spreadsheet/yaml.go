package spreadsheet

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlTimetable struct {
	Lessons []Row `yaml:"lessons"`
}

// ReadYAML reads a document of the form `lessons: [{class: 10Б, weekday: 0, ...}]`.
func ReadYAML(r io.Reader) ([]Row, error) {
	var doc yamlTimetable
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	for i := range doc.Lessons {
		doc.Lessons[i].Line = i + 1
	}
	return doc.Lessons, nil
}
