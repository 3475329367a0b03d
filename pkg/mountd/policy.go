package mountd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/cuemby/rlvm/pkg/log"
)

// ErrNotInteractable is returned when a path fails the mount policy.
var ErrNotInteractable = errors.New("path not interactable")

// Owner is the user/group pair that mounted paths must belong to.
type Owner struct {
	User  string
	Group string
	UID   int
	GID   int
}

func (o Owner) String() string {
	return fmt.Sprintf("%s:%s", o.User, o.Group)
}

// Policy decides which paths mountd may mount onto or from. It is immutable
// once built.
type Policy struct {
	owner     Owner
	whitelist []string
	logger    zerolog.Logger
}

// NewPolicy builds a policy for owner. Whitelist entries are doublestar globs
// matched against resolved absolute paths, so a device whitelist names the
// /dev/dm-* nodes rather than the /dev/mapper links. Malformed entries are
// logged and never match.
func NewPolicy(owner Owner, whitelist []string) *Policy {
	p := &Policy{
		owner:     owner,
		whitelist: append([]string(nil), whitelist...),
		logger:    log.WithComponent("mountd"),
	}
	for _, pattern := range p.whitelist {
		if !doublestar.ValidatePattern(pattern) {
			p.logger.Warn().Str("pattern", pattern).Msg("Invalid glob pattern in whitelist")
		}
	}
	return p
}

// Owner returns the owner pair applied to new mounts.
func (p *Policy) Owner() Owner {
	return p.owner
}

// Resolve returns the absolute path with every symlink and ".." element
// evaluated. Relative paths are rejected. A path that does not exist yields an
// error wrapping fs.ErrNotExist.
func (p *Policy) Resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %s is not absolute", ErrNotInteractable, path)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %s: %w", ErrNotInteractable, path, err)
	}
	return resolved, nil
}

// EnsureInteractable checks that path exists and is either whitelisted or
// owned by the policy owner. When readOnly is set the path must also carry no
// write permission bits. Every check runs on the resolved path, which is
// returned so callers act on exactly what was checked.
func (p *Policy) EnsureInteractable(path string, readOnly bool) (string, error) {
	resolved, err := p.Resolve(path)
	if err != nil {
		return "", err
	}

	var st unix.Stat_t
	if err := unix.Lstat(resolved, &st); err != nil {
		return "", fmt.Errorf("%w: cannot stat %s: %w", ErrNotInteractable, resolved, err)
	}

	if readOnly && st.Mode&0o222 != 0 {
		return "", fmt.Errorf("%w: %s should be read-only but has mode %#o", ErrNotInteractable, resolved, st.Mode&0o777)
	}

	if p.whitelisted(resolved) {
		return resolved, nil
	}

	if int(st.Uid) != p.owner.UID || int(st.Gid) != p.owner.GID {
		return "", fmt.Errorf("%w: %s is owned by %d:%d, not %s (%d:%d)",
			ErrNotInteractable, resolved, st.Uid, st.Gid, p.owner, p.owner.UID, p.owner.GID)
	}
	return resolved, nil
}

func (p *Policy) whitelisted(path string) bool {
	for _, pattern := range p.whitelist {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			p.logger.Info().Err(err).Str("pattern", pattern).Msg("Skipping invalid whitelist pattern")
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
