package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var containerOptions = []string{
	"AddCapability", "AddDevice", "AddHost", "Annotation", "AutoUpdate",
	"CgroupsMode", "ContainerName", "ContainersConfModule", "Exec", "Image",
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"AddCapability"}, Suggest("add-capabilty", containerOptions, 3))
	assert.Equal(t, []string{"ContainerName"}, Suggest("containername", containerOptions, 1))
	assert.Empty(t, Suggest("Zzz", containerOptions, 3))
}

func TestRank_OrderAndTies(t *testing.T) {
	ranked := Rank("AddHost", []string{"AddHost", "AddDevice", "AddHosts"})
	require.Len(t, ranked, 3)

	assert.Equal(t, "AddHost", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)
	assert.Equal(t, "AddHosts", ranked[1].Name)
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("AddDevic", []string{"AddDevice", "AddDevices", "AddDevicer"}, 2)
	assert.Len(t, got, 2)
}
