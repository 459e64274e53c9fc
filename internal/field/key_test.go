package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		raw      string
		expected Key
	}{
		{"AddDevice.host", Scalar("AddDevice", "host")},
		{"AddCapability.values[3]", Element("AddCapability", "values", 3)},
		{"Annotation.values.keys[0]", PairKey("Annotation", "values", 0)},
		{"Annotation.values.values[12]", PairValue("Annotation", "values", 12)},
		{"cap-add.options[0]/2", Element("cap-add", "options", 0)},
		{"AddDevice.host/1", Scalar("AddDevice", "host")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			k, err := Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"submit",
		".param",
		"option.",
		"option.param]",
		"option.param[x]",
		"option.param[-1]",
		"option.param.keys",
		"option.a.b",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Decode(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "AddDevice.host", Encode("AddDevice", "host", false, 0, RoleNone))
	assert.Equal(t, "AddDevice.permissions[1]", Encode("AddDevice", "permissions", true, 1, RoleNone))
	assert.Equal(t, "Annotation.values.keys[2]", Encode("Annotation", "values", true, 2, RoleKey))
	assert.Equal(t, "Annotation.values.values[2]", Encode("Annotation", "values", false, 2, RoleValue))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	keys := []Key{
		Scalar("ContainerName", "value"),
		Element("AddCapability", "values", 0),
		Element("AddCapability", "values", 41),
		PairKey("Label", "values", 7),
		PairValue("Label", "values", 7),
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			decoded, err := Decode(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, decoded)
		})
	}
}

func TestStripTag(t *testing.T) {
	assert.Equal(t, "a.b", StripTag("a.b/1"))
	assert.Equal(t, "a.b[0]", StripTag("a.b[0]/x/y"))
	assert.Equal(t, "a.b", StripTag("a.b"))
}

func TestKey_IsPair(t *testing.T) {
	assert.True(t, PairKey("o", "p", 0).IsPair())
	assert.False(t, Element("o", "p", 0).IsPair())
}
