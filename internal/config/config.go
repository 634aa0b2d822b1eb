package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Profile is an ordered list of sysctl writes, the TOML counterpart of
// sysctl.conf(5).
type Profile struct {
	Name     string    `toml:"name"`
	Settings []Setting `toml:"set"`
}

// Setting is one [[set]] entry. Value may be a TOML string, integer,
// boolean or array of integers.
type Setting struct {
	Name  string `toml:"name"`
	Value any    `toml:"value"`
}

func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return p, nil
}

func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	if p.Name == "" {
		p.Name = "default"
	}
	if err := ValidateProfile(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func ValidateProfile(p Profile) error {
	for i, s := range p.Settings {
		if err := ValidateSetting(s); err != nil {
			return fmt.Errorf("set[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func ValidateSetting(s Setting) error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(name, "= \t") {
		return fmt.Errorf("name %q must be a bare dotted name", s.Name)
	}
	if s.Value == nil {
		return fmt.Errorf("value is required for %s", name)
	}
	if _, err := s.Literal(); err != nil {
		return err
	}
	return nil
}

// Literal renders Value in the syntax accepted after '=' on the command
// line.
func (s Setting) Literal() (string, error) {
	switch v := s.Value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case []any:
		parts := make([]string, len(v))
		for i, el := range v {
			n, ok := el.(int64)
			if !ok {
				return "", fmt.Errorf("%s: array elements must be integers, got %T", s.Name, el)
			}
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("%s: unsupported value type %T", s.Name, s.Value)
	}
}
