package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quadlet-generator/internal/record"
)

func TestSepSpace(t *testing.T) {
	assert.Equal(t, "CAP_BPF CAP_SYSLOG", SepSpace([]string{"CAP_BPF", "CAP_SYSLOG"}))
	assert.Equal(t, "", SepSpace(nil))
}

func TestMapping(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		container   string
		permissions []string
		ifExists    bool
		expected    string
	}{
		{"host only", "/dev/device", "", nil, false, "/dev/device"},
		{"host and container", "/dev/a", "/dev/b", nil, false, "/dev/a:/dev/b"},
		{"deduped permissions", "/dev/device", "", []string{"r", "w", "r"}, false, "/dev/device:rw"},
		{"all segments", "/dev/a", "/dev/b", []string{"m", "r"}, false, "/dev/a:/dev/b:mr"},
		{"if exists", "/dev/a", "", []string{"w"}, true, "-/dev/a:w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mapping(tt.host, tt.container, tt.permissions, tt.ifExists))
		})
	}
}

func TestPair(t *testing.T) {
	assert.Equal(t, `A=B "C=D E"`, Pair(record.PairsOf("A", "B", "C", "D E").Map()))
	assert.Equal(t, "z=1 a=2", Pair(record.PairsOf("z", "1", "a", "2").Map()))
	assert.Equal(t, "", Pair(nil))
}
