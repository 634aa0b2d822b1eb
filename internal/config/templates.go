package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "profile":
		return profileTemplate, nil
	case "tool":
		return toolTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const profileTemplate = `name = "router"

[[set]]
name = "net.inet.ip.forwarding"
value = 1

[[set]]
name = "net.inet6.ip6.forwarding"
value = true

[[set]]
name = "kern.maxfiles"
value = 16384

[[set]]
name = "kern.hostname"
value = "gw.example.org"
`

const toolTemplate = `log_level = "warn"
log_timestamp = false
no_color = false
quiet = false
show_metrics = false
profile = ""
`
