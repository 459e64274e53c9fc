package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlet-generator/internal/record"
)

func TestFlatten(t *testing.T) {
	got := Flatten("AddDevice", []*record.Record{
		rec("host", "/dev/a", "permissions", []string{"r", "w"}),
		rec("host", "/dev/b"),
	})

	assert.Equal(t, entries(
		"AddDevice.host", "/dev/a",
		"AddDevice.permissions[0]", "r",
		"AddDevice.permissions[1]", "w",
		"AddDevice.host", "/dev/b",
	), got)

	got = Flatten("Annotation", []*record.Record{rec("values", record.PairsOf("A", "B", "C", "D"))})
	assert.Equal(t, entries(
		"Annotation.values.keys[0]", "A",
		"Annotation.values.values[0]", "B",
		"Annotation.values.keys[1]", "C",
		"Annotation.values.values[1]", "D",
	), got)
}

func TestFlatten_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		want *Result
	}{
		{
			name: "devices",
			want: result(recs("AddDevice",
				rec("host", "/dev/a", "container", "/dev/b", "permissions", []string{"r", "m"}, "ifExists", "on"),
				rec("host", "/dev/c"),
				rec("host", "/dev/d", "permissions", []string{"w"}),
			)),
		},
		{
			name: "capability lists",
			want: result(recs("AddCapability",
				rec("values", []string{"CAP_BPF", "CAP_KILL"}),
				rec("values", []string{"CAP_SYSLOG"}),
				rec("values", []string{"CAP_CHOWN", "CAP_BPF"}),
			)),
		},
		{
			name: "mixed options",
			want: result(
				recs("Image", rec("value", "docker.io/library/nginx")),
				recs("Annotation",
					rec("values", record.PairsOf("A", "B", "C", "D E")),
					rec("values", record.PairsOf("X", "Y"))),
				recs("AddHost", rec("hostname", "example.com", "ip", "10.0.0.1")),
				recs("Exec", rec("value", "--port 80")),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(t, tt.want.Entries())
			assertResult(t, tt.want, got)
		})
	}
}

func TestReadEntries(t *testing.T) {
	in := strings.Join([]string{
		"# container for the web app",
		"Image.value=docker.io/library/nginx",
		"",
		"  AddDevice.host/1 =/dev/dri",
		"Exec.value=--flag a=b\r",
		"AddHost.ip=",
	}, "\n")

	got, err := ReadEntries(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, entries(
		"Image.value", "docker.io/library/nginx",
		"AddDevice.host/1", "/dev/dri",
		"Exec.value", "--flag a=b",
		"AddHost.ip", "",
	), got)
}

func TestReadEntries_Malformed(t *testing.T) {
	_, err := ReadEntries(strings.NewReader("Image.value=nginx\nno equals sign\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadEntries(strings.NewReader("=value\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer

	in := entries("Image.value", "nginx", "Annotation.values.keys[0]", "A")
	require.NoError(t, WriteEntries(&buf, in))
	assert.Equal(t, "Image.value=nginx\nAnnotation.values.keys[0]=A\n", buf.String())

	back, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}
