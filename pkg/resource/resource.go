package resource

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName     = errors.New("invalid resource name")
	ErrInvalidUUID     = errors.New("invalid resource uuid")
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrInvalidTag      = errors.New("invalid tag")
)

const (
	maxNameLength = 127

	// MaxTagLength is the longest tag LVM accepts.
	MaxTagLength = 1024

	// tagEscape introduces a two digit hex escape in an escaped tag value.
	tagEscape = '&'
)

// Prefixes LVM refuses for user-created volume names.
var reservedPrefixes = []string{"snapshot", "pvmove"}

// Substrings LVM reserves for the sub-volumes of raid, mirror, cache and thin pools.
var reservedSubstrings = []string{
	"_cdata", "_cmeta", "_corig", "_mlog", "_mimage", "_pmspare",
	"_rimage", "_rmeta", "_tdata", "_tmeta", "_vorigin", "_vdata",
}

// uuidGroups is the dash-separated layout of an LVM UUID (6-4-4-4-4-4-6).
var uuidGroups = []int{6, 4, 4, 4, 4, 4, 6}

// Name is a validated LVM volume or volume group name.
type Name string

// UUID is a validated LVM UUID.
type UUID string

// Capacity is a validated size in bytes.
type Capacity uint64

// Tag is a validated LVM tag.
type Tag string

func (n Name) String() string { return string(n) }
func (u UUID) String() string { return string(u) }
func (t Tag) String() string  { return string(t) }

// Bytes returns the capacity as a plain byte count.
func (c Capacity) Bytes() uint64 { return uint64(c) }

// ParseName validates s against the LVM naming rules.
func ParseName(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(s) > maxNameLength {
		return "", fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, s, maxNameLength)
	}
	if s == "." || s == ".." {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidName, s)
	}
	if strings.HasPrefix(s, "-") {
		return "", fmt.Errorf("%w: %q starts with a hyphen", ErrInvalidName, s)
	}
	for _, r := range s {
		if !isNameChar(r) {
			return "", fmt.Errorf("%w: %q contains unsupported character %q", ErrInvalidName, s, r)
		}
	}
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(s, prefix) {
			return "", fmt.Errorf("%w: %q uses reserved prefix %q", ErrInvalidName, s, prefix)
		}
	}
	for _, sub := range reservedSubstrings {
		if strings.Contains(s, sub) {
			return "", fmt.Errorf("%w: %q contains reserved string %q", ErrInvalidName, s, sub)
		}
	}
	return Name(s), nil
}

// ParseUUID validates s as an LVM UUID such as
// "Zu2Ix7-9QdG-mN0b-Q3mT-2Rbv-xZ4k-QJcG1v".
func ParseUUID(s string) (UUID, error) {
	parts := strings.Split(s, "-")
	if len(parts) != len(uuidGroups) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	for i, part := range parts {
		if len(part) != uuidGroups[i] {
			return "", fmt.Errorf("%w: %q", ErrInvalidUUID, s)
		}
		for _, r := range part {
			if !isAlnum(r) {
				return "", fmt.Errorf("%w: %q", ErrInvalidUUID, s)
			}
		}
	}
	return UUID(s), nil
}

// ParseCapacity accepts any non-negative byte count.
func ParseCapacity(n int64) (Capacity, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCapacity, n)
	}
	return Capacity(n), nil
}

// CapacityFromUint converts a wire capacity. Values above math.MaxInt64 are
// rejected since the LVM tools parse sizes as signed integers.
func CapacityFromUint(n uint64) (Capacity, error) {
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds the maximum size", ErrInvalidCapacity, n)
	}
	return Capacity(n), nil
}

// ParseTag validates s against the LVM tag rules.
func ParseTag(s string) (Tag, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidTag)
	}
	if len(s) > MaxTagLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidTag, MaxTagLength)
	}
	for _, r := range s {
		if !isTagChar(r) {
			return "", fmt.Errorf("%w: %q contains unsupported character %q", ErrInvalidTag, s, r)
		}
	}
	return Tag(s), nil
}

// EscapeTagValue encodes an arbitrary string using only tag characters. Every
// byte LVM refuses in a tag, and the escape character itself, is written as
// '&' followed by two lowercase hex digits, so UnescapeTagValue recovers s
// exactly. The result is at most limit bytes long; a value that does not fit
// is cut between escapes, never inside one.
func EscapeTagValue(s string, limit int) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < utf8.RuneSelf && c != tagEscape && isTagChar(rune(c)) {
			if b.Len()+1 > limit {
				break
			}
			b.WriteByte(c)
			continue
		}
		if b.Len()+3 > limit {
			break
		}
		fmt.Fprintf(&b, "%c%02x", tagEscape, c)
	}
	return b.String()
}

// UnescapeTagValue reverses EscapeTagValue.
func UnescapeTagValue(s string) (string, error) {
	if !strings.ContainsRune(s, tagEscape) {
		return s, nil
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != tagEscape {
			out = append(out, s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("%w: truncated escape in %q", ErrInvalidTag, s)
		}
		n, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: bad escape %q in %q", ErrInvalidTag, s[i:i+3], s)
		}
		out = append(out, byte(n))
		i += 2
	}
	return string(out), nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isNameChar(r rune) bool {
	return isAlnum(r) || strings.ContainsRune("+_.-", r)
}

func isTagChar(r rune) bool {
	return isAlnum(r) || strings.ContainsRune("_+.-/=!:&#", r)
}
