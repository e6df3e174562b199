package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a content file holds no document.
var ErrEmptyDocument = errors.New("empty document")

// Extensions lists the file extensions recognised as content.
var Extensions = []string{".json", ".yaml", ".yml"}

// IsContentFile reports whether path has a content file extension.
func IsContentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decode parses data as a record of the given kind. JSON is decoded by the
// YAML parser, so both formats share one code path. Only the first document
// of a multi-document YAML file is read.
func Decode(kind Kind, path string, data []byte) (Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	root := doc.Content[0]

	switch kind {
	case KindLesson:
		l := &Lesson{}
		if err := root.Decode(l); err != nil {
			return nil, err
		}
		l.Path = path
		return l, nil
	case KindCourse:
		c := &Course{}
		if err := root.Decode(c); err != nil {
			return nil, err
		}
		c.Path = path
		return c, nil
	case KindInterviewQuestion:
		b := &QuestionBank{}
		if err := root.Decode(b); err != nil {
			return nil, err
		}
		b.Path = path
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported content kind %s", kind)
	}
}
