package format

import (
	"errors"
	"fmt"

	"quadlet-generator/internal/record"
)

// Formatter renders one record as text.
type Formatter func(r *record.Record) (string, error)

// Builtin formatter names.
const (
	NameIdentity = "identity"
	NameSepSpace = "sepSpace"
	NameMapping  = "mapping"
	NamePair     = "pair"
)

// Parameter keys read by the builtin record formatters.
const (
	ParamValue       = "value"
	ParamValues      = "values"
	ParamHost        = "host"
	ParamContainer   = "container"
	ParamPermissions = "permissions"
	ParamIfExists    = "ifExists"
)

// ErrAmbiguousRecord is returned when a single-value formatter receives a
// record with several parameters and none of them is the conventional one.
var ErrAmbiguousRecord = errors.New("record has no single value")

// Identity returns the record's "value" parameter or, failing that, its only
// parameter. An empty record formats as "".
func Identity(r *record.Record) (string, error) {
	v, err := soleValue(r, ParamValue)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

// SepSpaceRecord formats the record's list with SepSpace.
func SepSpaceRecord(r *record.Record) (string, error) {
	v, err := soleValue(r, ParamValues)
	if err != nil {
		return "", err
	}

	return SepSpace(v.Strings()), nil
}

// MappingRecord formats host, container, permissions and ifExists with Mapping.
func MappingRecord(r *record.Record) (string, error) {
	return Mapping(
		r.Scalar(ParamHost),
		r.Scalar(ParamContainer),
		r.Strings(ParamPermissions),
		r.Bool(ParamIfExists),
	), nil
}

// PairRecord formats the record's pair mapping with Pair.
func PairRecord(r *record.Record) (string, error) {
	v, err := soleValue(r, ParamValues)
	if err != nil {
		return "", err
	}

	if v.Kind() != record.KindPairs {
		return "", fmt.Errorf("pair formatter: expected pairs, got %s", v.Kind())
	}

	return Pair(v.Map()), nil
}

// soleValue picks the preferred parameter, or the only one present.
func soleValue(r *record.Record, preferred string) (record.Value, error) {
	if v, ok := r.Get(preferred); ok {
		return v, nil
	}

	switch r.Len() {
	case 0:
		return record.Scalar(""), nil
	case 1:
		v, _ := r.Get(r.Params()[0])
		return v, nil
	default:
		return record.Value{}, fmt.Errorf("%w: parameters %v", ErrAmbiguousRecord, r.Params())
	}
}
