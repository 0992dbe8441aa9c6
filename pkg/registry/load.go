package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/stylekit/pkg/types"
)

// Format is a registry file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: unknown extension %q", ErrFormat, filepath.Ext(path))
	}
}

// fileDef is the on-disk shape of a definition. The id is decoded wide so an
// out-of-range value reports ErrInvalid rather than an overflow.
type fileDef struct {
	Name       string `yaml:"name" toml:"name"`
	ID         int    `yaml:"id" toml:"id"`
	Inherited  bool   `yaml:"inherited" toml:"inherited"`
	Animatable bool   `yaml:"animatable" toml:"animatable"`
}

type file struct {
	Properties []fileDef `yaml:"properties" toml:"properties"`
}

// Load reads a registry from a .yaml, .yml or .toml file.
func Load(path string) (*Registry, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a registry document.
func Parse(data []byte, format Format) (*Registry, error) {
	var f file
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, format, err)
	}

	defs := make([]Def, 0, len(f.Properties))
	for _, fd := range f.Properties {
		if fd.ID < 0 || fd.ID >= types.MaxPropertyIDs {
			return nil, fmt.Errorf("%w: %s: id %d: %w", ErrInvalid, fd.Name, fd.ID, types.ErrOutOfRange)
		}
		defs = append(defs, Def{
			Name:       fd.Name,
			ID:         types.PropertyID(fd.ID),
			Inherited:  fd.Inherited,
			Animatable: fd.Animatable,
		})
	}
	return New(defs)
}
