package catalog

//go:generate go tool stringer -type=ParamType -linecomment -output=paramtype_string.go

// ParamType is the declared type of a parameter.
type ParamType int

const (
	_ ParamType = iota // zero value marks an unknown type

	TypePath    // path
	TypeString  // string
	TypeSelect  // select
	TypeBoolean // boolean
	TypePair    // pair

	// paramTypeEnd is one past the last valid type.
	paramTypeEnd
)

// ParseParamType resolves a YAML type name.
func ParseParamType(name string) (ParamType, bool) {
	for t := TypePath; t < paramTypeEnd; t++ {
		if t.String() == name {
			return t, true
		}
	}

	return 0, false
}

// IsValid returns true for the known types.
func (t ParamType) IsValid() bool {
	return t >= TypePath && t < paramTypeEnd
}

// ParamTypeNames returns the YAML names of all types.
func ParamTypeNames() []string {
	names := make([]string, 0, int(paramTypeEnd)-1)
	for t := TypePath; t < paramTypeEnd; t++ {
		names = append(names, t.String())
	}

	return names
}
