package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"quadlet-generator/internal/record"
)

var templateFuncs = template.FuncMap{
	"join":     strings.Join,
	"sepSpace": SepSpace,
}

// Template compiles text into a Formatter. The record's parameters are
// available as {{.param}}; every name in params defaults to "" so absent
// optional parameters render empty instead of "<no value>".
func Template(name, text string, params []string) (Formatter, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	return func(r *record.Record) (string, error) {
		data := make(map[string]any, len(params)+r.Len())
		for _, p := range params {
			data[p] = ""
		}

		for k, v := range r.Data() {
			data[k] = v
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("executing template %s: %w", name, err)
		}

		return buf.String(), nil
	}, nil
}
