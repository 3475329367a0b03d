package resource

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "data", wantErr: false},
		{name: "all allowed characters", input: "a-Z_0.9+x", wantErr: false},
		{name: "hex digest", input: "9f86d081884c7d659a2feaa0c55ad015", wantErr: false},
		{name: "max length", input: strings.Repeat("a", 127), wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 128), wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "leading hyphen", input: "-vol", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "space", input: "a b", wantErr: true},
		{name: "snapshot prefix", input: "snapshot1", wantErr: true},
		{name: "pvmove prefix", input: "pvmove0", wantErr: true},
		{name: "reserved tmeta", input: "pool_tmeta", wantErr: true},
		{name: "reserved rimage", input: "lv_rimage_0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "Zu2Ix7-9QdG-mN0b-Q3mT-2Rbv-xZ4k-QJcG1v", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "rfc4122 uuid", input: "123e4567-e89b-12d3-a456-426614174000", wantErr: true},
		{name: "wrong group length", input: "Zu2Ix-9QdG-mN0b-Q3mT-2Rbv-xZ4k-QJcG1vv", wantErr: true},
		{name: "non alphanumeric", input: "Zu2Ix_-9QdG-mN0b-Q3mT-2Rbv-xZ4k-QJcG1v", wantErr: true},
		{name: "too few groups", input: "Zu2Ix7-9QdG-mN0b-Q3mT-2Rbv-QJcG1v", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUUID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUUID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, UUID(tt.input), got)
		})
	}
}

func TestParseCapacity(t *testing.T) {
	c, err := ParseCapacity(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), c.Bytes())

	c, err = ParseCapacity(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), c.Bytes())

	_, err = ParseCapacity(-1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = CapacityFromUint(math.MaxUint64)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("name=pvc-1234/data:rw")
	require.NoError(t, err)
	assert.Equal(t, "name=pvc-1234/data:rw", tag.String())

	_, err = ParseTag("")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = ParseTag("name=has space")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = ParseTag(strings.Repeat("t", 1025))
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "pvc-1234/data:rw", want: "pvc-1234/data:rw"},
		{name: "space", in: "my volume", want: "my&20volume"},
		{name: "underscore kept", in: "my_volume", want: "my_volume"},
		{name: "escape character", in: "a&b", want: "a&26b"},
		{name: "multibyte", in: "é", want: "&c3&a9"},
		{name: "control", in: "weird\tvalue", want: "weird&09value"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeTagValue(tt.in, MaxTagLength)
			assert.Equal(t, tt.want, got)

			back, err := UnescapeTagValue(got)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back)

			if got != "" {
				_, err = ParseTag("name=" + got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestEscapeTagValue_DistinctInputsStayDistinct(t *testing.T) {
	inputs := []string{"my volume", "my_volume", "my?volume", "my&20volume"}
	seen := map[string]string{}
	for _, in := range inputs {
		out := EscapeTagValue(in, MaxTagLength)
		prev, dup := seen[out]
		assert.False(t, dup, "%q and %q both escape to %q", prev, in, out)
		seen[out] = in
	}
}

func TestEscapeTagValue_Limit(t *testing.T) {
	long := EscapeTagValue(strings.Repeat("x", 2000), MaxTagLength-len("name="))
	assert.Len(t, long, MaxTagLength-len("name="))
	_, err := ParseTag("name=" + long)
	assert.NoError(t, err)

	// An escape that would straddle the limit is dropped whole.
	cut := EscapeTagValue("ab c", 4)
	assert.Equal(t, "ab", cut)
	back, err := UnescapeTagValue(cut)
	require.NoError(t, err)
	assert.Equal(t, "ab", back)

	spaces := EscapeTagValue(strings.Repeat(" ", 1000), 1019)
	assert.Len(t, spaces, 1017)
	back, err = UnescapeTagValue(spaces)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 339), back)
}

func TestUnescapeTagValue_Malformed(t *testing.T) {
	for _, in := range []string{"a&", "a&2", "a&zz"} {
		_, err := UnescapeTagValue(in)
		assert.ErrorIs(t, err, ErrInvalidTag, in)
	}
}
