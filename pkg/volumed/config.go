package volumed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/rlvm/pkg/lvm"
	"github.com/cuemby/rlvm/pkg/resource"
)

// DefaultConfigPath is where volumed looks for its configuration.
const DefaultConfigPath = "/etc/volumed/volumed.yaml"

// Config is the on-disk volumed configuration.
type Config struct {
	// VolumeGroup is the LVM volume group to manage.
	VolumeGroup string `yaml:"volume_group"`
	// SpareBytes are kept free and never reported as provisionable.
	SpareBytes uint64 `yaml:"spare_bytes"`
}

// LoadConfig reads and strictly decodes a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", path, err)
	}

	if _, err := resource.ParseName(cfg.VolumeGroup); err != nil {
		return nil, fmt.Errorf("invalid config at %s: volume_group: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration against the volume group it manages.
func (c *Config) Validate(vg *lvm.VolumeGroup) error {
	if vg.SizeBytes <= c.SpareBytes {
		return fmt.Errorf("capacity of managed volume group (%d) is not larger than the requested spare_bytes (%d)",
			vg.SizeBytes, c.SpareBytes)
	}
	return nil
}
