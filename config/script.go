package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lobjects/host"
	"gopkg.in/yaml.v3"
)

// Script is a parsed patch script.
type Script struct {
	Objects []ObjectSpec `yaml:"objects"`
	Connect []Connection `yaml:"connect"`
	Events  []Event      `yaml:"events"`
}

// ObjectSpec declares one object.
type ObjectSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Args string `yaml:"args"`
}

// Connection wires an outlet of one object to an inlet of another.
type Connection struct {
	From   string `yaml:"from"`
	Outlet int    `yaml:"outlet"`
	To     string `yaml:"to"`
	Inlet  int    `yaml:"inlet"`
}

// Event delivers one message. Inlet defaults to 0.
type Event struct {
	To      string `yaml:"to"`
	Inlet   int    `yaml:"inlet"`
	Message string `yaml:"message"`
}

// ValidationError aggregates script validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid script"
	}
	var b strings.Builder
	b.WriteString("config: script validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}

	return b.String()
}

// ErrEmptyScript is returned for a script file with no document.
var ErrEmptyScript = errors.New("config: empty script")

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var s Script
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}

		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks names, kinds and references. Inlet and outlet numbers
// are checked when the patch is built.
func (s *Script) Validate() error {
	var errs ValidationError
	kinds := make(map[string]bool)
	for _, k := range host.Kinds() {
		kinds[k] = true
	}

	names := make(map[string]bool, len(s.Objects))
	for i, o := range s.Objects {
		switch {
		case o.Name == "":
			errs.Issues = append(errs.Issues, fmt.Sprintf("objects[%d]: name must be provided", i))
		case names[o.Name]:
			errs.Issues = append(errs.Issues, fmt.Sprintf("objects[%d]: duplicate name %q", i, o.Name))
		default:
			names[o.Name] = true
		}
		if !kinds[o.Kind] {
			errs.Issues = append(errs.Issues, fmt.Sprintf("objects[%d]: unknown kind %q", i, o.Kind))
		}
	}
	for i, c := range s.Connect {
		if !names[c.From] {
			errs.Issues = append(errs.Issues, fmt.Sprintf("connect[%d]: unknown object %q", i, c.From))
		}
		if !names[c.To] {
			errs.Issues = append(errs.Issues, fmt.Sprintf("connect[%d]: unknown object %q", i, c.To))
		}
	}
	for i, e := range s.Events {
		if !names[e.To] {
			errs.Issues = append(errs.Issues, fmt.Sprintf("events[%d]: unknown object %q", i, e.To))
		}
		if strings.TrimSpace(e.Message) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("events[%d]: message must be provided", i))
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}

	return nil
}
