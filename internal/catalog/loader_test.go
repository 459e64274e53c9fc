package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlet-generator/internal/format"
	"quadlet-generator/internal/record"
)

func loadContainer(t *testing.T) *Catalog {
	t.Helper()

	c, err := Builtin("container", format.NewRegistry(), nil)
	require.NoError(t, err)

	return c
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"build", "container", "image", "kube", "network", "pod", "volume"}, Kinds())
}

func TestBuiltin_AllKindsLoadCleanly(t *testing.T) {
	reg := format.NewRegistry()

	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			c, err := Builtin(kind, reg, nil)
			require.NoError(t, err)

			assert.Equal(t, kind, c.Kind)
			assert.NotEmpty(t, c.Section)
			assert.NotEmpty(t, c.Command)

			diags := Validate(c, reg)
			assert.Empty(t, diags.Errors)
			assert.Empty(t, diags.Warnings, "%v", diags.All())
		})
	}
}

func TestBuiltin_UnknownKind(t *testing.T) {
	_, err := Builtin("daemonset", format.NewRegistry(), nil)
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "container")
}

func TestBuiltin_ContainerShape(t *testing.T) {
	c := loadContainer(t)

	assert.Equal(t, "Container", c.Section)
	assert.Equal(t, []string{"run"}, c.Command)
	assert.Equal(t, []string{"Image"}, c.Required)
	assert.Equal(t, RolePositional, c.Roles.RoleOf("Image"))
	assert.Equal(t, RoleTrailing, c.Roles.RoleOf("Exec"))
	assert.Equal(t, RoleGlobal, c.Roles.RoleOf("ContainersConfModule"))
	assert.Equal(t, RoleFlag, c.Roles.RoleOf("AddDevice"))

	names := c.Names()
	require.GreaterOrEqual(t, len(names), 11)
	assert.Equal(t, []string{
		"AddCapability", "AddDevice", "AddHost", "Annotation", "AutoUpdate",
		"CgroupsMode", "ContainerName", "ContainersConfModule", "Environment", "Exec", "Image",
	}, names[:11])

	dev := c.Lookup("AddDevice")
	require.NotNil(t, dev)
	assert.Equal(t, "device", dev.Arg)
	assert.True(t, dev.AllowMultiple)

	perms := dev.Param("permissions")
	require.NotNil(t, perms)
	assert.Equal(t, TypeSelect, perms.Type)
	assert.Equal(t, []string{"r", "w", "m"}, perms.Options.Values())
	assert.Equal(t, "mknod", perms.Options[2].Label)

	ifExists := dev.Param("ifExists")
	require.NotNil(t, ifExists)
	assert.True(t, ifExists.IsOptional)
	assert.False(t, ifExists.IsRequired())
	assert.True(t, dev.Param("host").IsRequired())

	ann := c.Lookup("Annotation").Param("values")
	require.NotNil(t, ann)
	assert.True(t, ann.IsArray)
	assert.Equal(t, StringOrArray{"annotation", "value"}, ann.Placeholder)

	assert.True(t, c.Lookup("Secret").Unsupported)
	assert.Nil(t, c.Lookup("Nope"))
}

func TestLoad_Errors(t *testing.T) {
	reg := format.NewRegistry()

	_, err := Load([]byte("kind: [broken"), reg, nil)
	require.Error(t, err)

	_, err = Load([]byte(`
kind: demo
options:
  Thing:
    arg: thing
    params:
      - param: value
        type: strng
`), reg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_param_type")
	assert.Contains(t, err.Error(), "string")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kind: custom
section: Service
command: [run]
options:
  Name:
    arg: name
    params:
      - param: value
        type: string
`), 0o600))

	c, err := LoadFile(path, format.NewRegistry(), nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", c.Kind)
	assert.Equal(t, []string{"Name"}, c.Names())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), format.NewRegistry(), nil)
	require.Error(t, err)
}

func TestMissingRequired(t *testing.T) {
	c, err := Builtin("build", format.NewRegistry(), nil)
	require.NoError(t, err)

	present := map[string]bool{"ImageTag": true}
	missing := c.MissingRequired(func(option string) bool { return present[option] })
	assert.Equal(t, []string{"SetWorkingDirectory"}, missing)
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := loadContainer(t)

	data, err := Marshal(c)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, c.Names(), again.Names())
	assert.Equal(t, c.Roles, again.Roles)
	assert.Equal(t, c.Lookup("AddDevice").Param("permissions").Options,
		again.Lookup("AddDevice").Param("permissions").Options)
	assert.Equal(t, c.Lookup("CgroupsMode").Param("value").Options,
		again.Lookup("CgroupsMode").Param("value").Options)
	assert.Equal(t, StringOrArray{"systemd-%N"}, again.Lookup("ContainerName").Param("value").Placeholder)
}

func TestApplyDefaults_PairImpliesArray(t *testing.T) {
	c, err := Parse([]byte(`
kind: demo
options:
  Env:
    arg: env
    params:
      - param: values
        type: pair
`))
	require.NoError(t, err)

	p := c.Lookup("Env").Param("values")
	require.NotNil(t, p)
	assert.Equal(t, TypePair, p.Type)
	assert.True(t, p.IsArray)
}

func TestFormatters_Unresolved(t *testing.T) {
	c, err := Parse([]byte(`
kind: demo
options:
  Name:
    arg: name
    params:
      - param: value
        type: string
`))
	require.NoError(t, err)

	_, err = c.Lookup("Name").FormatConfig(record.New())
	require.ErrorIs(t, err, ErrUnresolved)
	_, err = c.Lookup("Name").FormatCommand(record.New())
	require.ErrorIs(t, err, ErrUnresolved)
}
