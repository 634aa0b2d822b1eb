package config

import (
	"strings"

	"github.com/danmuck/mibctl/internal/sysctl"
)

// Writes converts the profile into client settings in file order.
func (p Profile) Writes() ([]sysctl.Setting, error) {
	out := make([]sysctl.Setting, 0, len(p.Settings))
	for _, s := range p.Settings {
		lit, err := s.Literal()
		if err != nil {
			return nil, err
		}
		out = append(out, sysctl.Setting{Name: strings.TrimSpace(s.Name), Value: lit})
	}
	return out, nil
}
