// Package layout matches archive entry names against named patterns and
// extracts provenance properties (participant id, timestamp) from them.
package layout

import (
	"fmt"
	"os"

	"github.com/elastic/go-grok"
	"gopkg.in/yaml.v3"
)

// Layout is a named grok pattern over entry names. Named captures in the
// pattern become record properties, e.g.
//
//	participant-%{DATA:participant_id}_source-YouTube_key-%{WORD}.json
type Layout struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`

	g *grok.Grok
}

func NewLayout(name, pattern string) (*Layout, error) {
	l := &Layout{Name: name, Pattern: pattern}
	if err := l.compile(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) compile() error {
	g := grok.New()
	// namedCapturesOnly - unnamed pattern groups are not extracted
	if err := g.Compile(l.Pattern, true); err != nil {
		return fmt.Errorf("failed to compile layout %s: %w", l.Name, err)
	}
	l.g = g
	return nil
}

// Match checks the entry name against the layout pattern and, if it matches,
// returns the captured properties
func (l *Layout) Match(entryName string) (map[string]string, bool) {
	if !l.g.MatchString(entryName) {
		return nil, false
	}

	captures, err := l.g.Parse([]byte(entryName))
	if err != nil {
		return nil, false
	}

	properties := make(map[string]string, len(captures))
	for k, v := range captures {
		properties[k] = string(v)
	}
	return properties, true
}

// Set is an ordered collection of layouts - the first matching layout wins,
// so more specific patterns must come first
type Set struct {
	Layouts []*Layout `yaml:"layouts"`
}

func NewSet(layouts ...*Layout) *Set {
	return &Set{Layouts: layouts}
}

// Match returns the first layout matching the entry name, along with its
// captured properties
func (s *Set) Match(entryName string) (*Layout, map[string]string, bool) {
	for _, l := range s.Layouts {
		if properties, ok := l.Match(entryName); ok {
			return l, properties, true
		}
	}
	return nil, nil, false
}

func (s *Set) Empty() bool {
	return s == nil || len(s.Layouts) == 0
}

// LoadFile reads a layout set from a YAML spec file
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	var res Set
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}

	for _, l := range res.Layouts {
		if l.Name == "" || l.Pattern == "" {
			return nil, fmt.Errorf("layout file %s: every layout requires a name and a pattern", path)
		}
		if err := l.compile(); err != nil {
			return nil, err
		}
	}
	return &res, nil
}
