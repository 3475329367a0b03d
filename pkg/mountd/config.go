package mountd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/moby/sys/user"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where mountd looks for its configuration.
const DefaultConfigPath = "/etc/mountd/mountd.yaml"

// Config is the on-disk mountd configuration.
type Config struct {
	// ForUser owns every mounted path. A name or a numeric uid.
	ForUser string `yaml:"for_user"`
	// ForGroup owns every mounted path. A name or a numeric gid.
	ForGroup string `yaml:"for_group"`
	// Whitelist holds globs of paths that may be owned by someone else.
	Whitelist []string `yaml:"whitelist"`
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

	if cfg.ForUser == "" {
		return nil, fmt.Errorf("invalid config at %s: for_user is required", path)
	}
	if cfg.ForGroup == "" {
		return nil, fmt.Errorf("invalid config at %s: for_group is required", path)
	}
	return &cfg, nil
}

// Policy resolves the configured owner against the host user database.
func (c *Config) Policy() (*Policy, error) {
	owner, err := c.resolveOwner()
	if err != nil {
		return nil, err
	}
	return NewPolicy(owner, c.Whitelist), nil
}

func (c *Config) resolveOwner() (Owner, error) {
	owner := Owner{User: c.ForUser, Group: c.ForGroup}

	if uid, err := strconv.Atoi(c.ForUser); err == nil {
		owner.UID = uid
	} else {
		u, err := user.LookupUser(c.ForUser)
		if err != nil {
			return Owner{}, fmt.Errorf("could not get UID from username %q: %w", c.ForUser, err)
		}
		owner.UID = u.Uid
	}

	if gid, err := strconv.Atoi(c.ForGroup); err == nil {
		owner.GID = gid
	} else {
		g, err := user.LookupGroup(c.ForGroup)
		if err != nil {
			return Owner{}, fmt.Errorf("could not get GID from group %q: %w", c.ForGroup, err)
		}
		owner.GID = g.Gid
	}

	return owner, nil
}
