package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"gopkg.in/yaml.v3"
)

type deviceFile struct {
	Devices []entity.DeviceProfile `yaml:"devices"`
}

// DeviceProfiles maps a lowercase device name to its profile.
type DeviceProfiles map[string]entity.DeviceProfile

// LoadDeviceProfiles reads a YAML device profile file. An empty path yields no profiles.
func LoadDeviceProfiles(path string) (DeviceProfiles, error) {
	if path == "" {
		return DeviceProfiles{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device profiles: %w", err)
	}
	return ParseDeviceProfiles(data)
}

// ParseDeviceProfiles decodes a device profile document.
func ParseDeviceProfiles(data []byte) (DeviceProfiles, error) {
	var file deviceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse device profiles: %w", err)
	}

	profiles := make(DeviceProfiles, len(file.Devices))
	for i, p := range file.Devices {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			return nil, fmt.Errorf("device profile %d: name is required", i)
		}
		if _, dup := profiles[key]; dup {
			return nil, fmt.Errorf("device profile %q: duplicate name", p.Name)
		}
		p.Format = string(enum.ParseOutputFormat(p.Format))
		if p.Context == nil {
			p.Context = map[string]any{}
		}
		profiles[key] = p
	}
	return profiles, nil
}

// Lookup finds a profile by case-insensitive name.
func (d DeviceProfiles) Lookup(name string) (entity.DeviceProfile, bool) {
	p, ok := d[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns the configured device names in sorted order.
func (d DeviceProfiles) Names() []string {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
