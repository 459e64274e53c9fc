package form

import (
	"quadlet-generator/internal/field"
	"quadlet-generator/internal/record"
)

// Flatten encodes records of option into the entries a renderer would
// submit for them, in record order.
func Flatten(option string, records []*record.Record) []Entry {
	var entries []Entry

	for _, rec := range records {
		rec.Each(func(param string, v record.Value) {
			switch v.Kind() {
			case record.KindList:
				for i, s := range v.Strings() {
					entries = append(entries, Entry{Key: field.Element(option, param, i).String(), Value: s})
				}
			case record.KindPairs:
				i := 0
				for p := v.Map().Oldest(); p != nil; p = p.Next() {
					entries = append(entries,
						Entry{Key: field.PairKey(option, param, i).String(), Value: p.Key},
						Entry{Key: field.PairValue(option, param, i).String(), Value: p.Value})
					i++
				}
			default:
				entries = append(entries, Entry{Key: field.Scalar(option, param).String(), Value: v.String()})
			}
		})
	}

	return entries
}
