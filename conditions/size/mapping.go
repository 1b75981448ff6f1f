package size

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed sizes.yaml
var defaultSizes []byte

// Sentinel errors returned by LoadMapping.
var (
	ErrEmptyMapping  = errors.New("size mapping has no entries")
	ErrInvalidCode   = errors.New("size code must be a single character")
	ErrDuplicateCode = errors.New("size code is defined more than once")
	ErrEmptyLabel    = errors.New("size label is empty")
)

// Mapping is a code -> label table with an Unknown fallback. The zero value
// and a nil *Mapping map every code to Unknown.
type Mapping struct {
	labels map[string]string
}

// Name returns the label for code, or Unknown.
func (m *Mapping) Name(code string) string {
	if m == nil {
		return Unknown
	}
	if label, ok := m.labels[fold(code)]; ok {
		return label
	}
	return Unknown
}

// Codes returns the folded codes of m in sorted order.
func (m *Mapping) Codes() []string {
	if m == nil {
		return nil
	}
	codes := make([]string, 0, len(m.labels))
	for c := range m.labels {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// LoadMapping decodes a YAML document of code: label pairs. Codes that fold
// to the same key (L and l) and blank labels are rejected.
func LoadMapping(r io.Reader) (*Mapping, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMapping
		}
		return nil, fmt.Errorf("decode size mapping: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyMapping
	}

	labels := make(map[string]string, len(raw))
	for code, label := range raw {
		if utf8.RuneCountInString(code) != 1 {
			return nil, fmt.Errorf("code %q: %w", code, ErrInvalidCode)
		}
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("code %q: %w", code, ErrEmptyLabel)
		}
		key := fold(code)
		if _, ok := labels[key]; ok {
			return nil, fmt.Errorf("code %q: %w", code, ErrDuplicateCode)
		}
		labels[key] = label
	}
	return &Mapping{labels: labels}, nil
}

// LoadMappingFile reads a mapping from a YAML file.
func LoadMappingFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open size mapping: %w", err)
	}
	defer f.Close()

	m, err := LoadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

var defaultMapping = sync.OnceValue(func() *Mapping {
	m, err := LoadMapping(bytes.NewReader(defaultSizes))
	if err != nil {
		panic(fmt.Sprintf("embedded sizes.yaml: %v", err))
	}
	return m
})

// Default returns the table embedded from sizes.yaml.
func Default() *Mapping { return defaultMapping() }
