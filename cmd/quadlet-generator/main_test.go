package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const webFields = `# web container
Image.value=docker.io/library/nginx:latest
AddCapability.values[0]=CAP_NET_BIND_SERVICE
Annotation.values.keys[0]=A
Annotation.values.values[0]=B
Annotation.values.keys[1]=C
Annotation.values.values[1]=D
submit=quadlet
`

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	a := newApp()
	a.log = zap.NewNop()
	a.stdin = strings.NewReader(stdin)

	var out bytes.Buffer

	cmd := newRootCommand(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerate_Quadlet(t *testing.T) {
	out, err := run(t, webFields, "generate")
	require.NoError(t, err)

	assert.Equal(t, "[Container]\n"+
		"Image=docker.io/library/nginx:latest\n"+
		"AddCapability=CAP_NET_BIND_SERVICE\n"+
		"Annotation=A=B C=D\n", out)
}

func TestGenerate_NoSection(t *testing.T) {
	out, err := run(t, "Image.value=nginx\n", "generate", "--section=false")
	require.NoError(t, err)
	assert.Equal(t, "Image=nginx\n", out)
}

func TestGenerate_Podman(t *testing.T) {
	out, err := run(t, webFields, "generate", "--mode", "podman")
	require.NoError(t, err)

	assert.Equal(t, "podman run --cap-add CAP_NET_BIND_SERVICE --annotation A=B --annotation C=D"+
		" docker.io/library/nginx:latest\n", out)
}

func TestGenerate_FileInAndOut(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.fields")
	dst := filepath.Join(dir, "units", "data.volume")

	require.NoError(t, os.WriteFile(in, []byte("VolumeName.value=data\nDriver.value=local\n"), 0o600))

	out, err := run(t, "", "generate", "--kind", "volume", "-o", dst, in)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "[Volume]\nVolumeName=data\nDriver=local\n", string(data))
}

func TestGenerate_EnvironmentConfig(t *testing.T) {
	t.Setenv("QUADLETGEN_MODE", "podman")
	t.Setenv("QUADLETGEN_KIND", "image")

	out, err := run(t, "Image.value=quay.io/podman/hello\n", "generate")
	require.NoError(t, err)
	assert.Equal(t, "podman image pull quay.io/podman/hello\n", out)
}

func TestGenerate_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("mode: podman\nkind: kube\n"), 0o600))

	out, err := run(t, "Yaml.value=app.yaml\n", "generate", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "podman kube play app.yaml\n", out)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := run(t, "Image.value=nginx\n", "generate", "--mode", "docker")
	require.ErrorContains(t, err, "unknown output mode")

	_, err = run(t, "Image.value=nginx\n", "generate", "--kind", "daemonset")
	require.ErrorContains(t, err, "unknown resource kind")

	_, err = run(t, "Image.value/1=a\nImage.value/2=b\n", "generate")
	require.ErrorContains(t, err, "single instance")

	_, err = run(t, "not a field line\n", "generate")
	require.ErrorContains(t, err, "malformed entry line")
}

func TestParse(t *testing.T) {
	out, err := run(t, webFields, "parse")
	require.NoError(t, err)
	assert.Contains(t, out, `Image[0] {value: "docker.io/library/nginx:latest"}`)
	assert.Contains(t, out, "Annotation[0] {values: {A=B C=D}}")

	out, err = run(t, webFields, "parse", "--flat")
	require.NoError(t, err)
	assert.Equal(t, "Image.value=docker.io/library/nginx:latest\n"+
		"AddCapability.values[0]=CAP_NET_BIND_SERVICE\n"+
		"Annotation.values.keys[0]=A\n"+
		"Annotation.values.values[0]=B\n"+
		"Annotation.values.keys[1]=C\n"+
		"Annotation.values.values[1]=D\n", out)

	out, err = run(t, webFields, "parse", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, `Option: (string) (len=10) "Annotation"`)
	assert.Contains(t, out, "map[string]string")
}

func TestFields(t *testing.T) {
	out, err := run(t, "", "fields", "AddCapability", "--siblings", "2")
	require.NoError(t, err)
	assert.Equal(t, "AddCapability.values[0]\nAddCapability.values[1]\n", out)

	_, err = run(t, "", "fields", "Secret")
	require.ErrorContains(t, err, "not supported")

	_, err = run(t, "", "fields", "Nope")
	require.ErrorContains(t, err, "unknown option")
}

func TestOptions(t *testing.T) {
	out, err := run(t, "", "options", "--kind", "volume")
	require.NoError(t, err)
	assert.Contains(t, out, "OPTION")
	assert.Contains(t, out, "VolumeName")
	assert.Contains(t, out, "labels")

	out, err = run(t, "", "options", "--export")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: container")
	assert.Contains(t, out, "AddDevice:")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", "--kind", "container")
	require.NoError(t, err)
	assert.Contains(t, out, "container: ok")
	assert.Contains(t, out, "[unsupported_option]")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
kind: bad
options:
  Thing:
    arg: thing
    params:
      - {param: value, type: selct}
`), 0o600))

	out, err = run(t, "", "check", bad)
	require.Error(t, err)
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "did you mean select?")
	assert.Contains(t, out, "failed")
}
