package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meekukin/casekit/registry"
)

// ErrInvalidProfile indicates a profile file that fails YAML parsing or
// schema validation.
var ErrInvalidProfile = errors.New("profile: invalid collection profile")

// Profile is one collection filter set, as stored in YAML.
type Profile struct {
	Prefix  string   `yaml:"prefix"`
	Glob    string   `yaml:"glob"`
	Tags    []string `yaml:"tags"`
	TagMode string   `yaml:"tag_mode"`
}

// Parse validates data against the embedded profile schema and decodes
// it.
func Parse(data []byte) (*Profile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	return &p, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Options converts the profile into the equivalent registry options.
// Zero-valued fields contribute nothing, so a partial profile only
// overrides what it names.
func (p *Profile) Options() []registry.Option {
	var opts []registry.Option
	if p.Prefix != "" {
		opts = append(opts, registry.WithPrefix(p.Prefix))
	}
	if p.Glob != "" {
		opts = append(opts, registry.WithGlob(p.Glob))
	}
	if len(p.Tags) > 0 {
		if p.TagMode == "all" {
			opts = append(opts, registry.WithTags(registry.HasAllTags(p.Tags...)))
		} else {
			opts = append(opts, registry.WithTags(registry.HasAnyTag(p.Tags...)))
		}
	}

	return opts
}
