package main

import (
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
}

var _tmpl = template.Must(template.New("").Funcs(funcMap).Parse(`// Code generated by "gen-enum {{ join .Args " " }}"; DO NOT EDIT.

package {{ .PackageName }}

import (
	"errors"
	"fmt"
)

func _() {
	// An "invalid array index" compiler error signifies that the constant
	// values have changed. Run the generator again.
	var x [1]struct{}
{{- range .Values }}
	_ = x[{{ .Name }}-{{ .Value }}]
{{- end }}
}

// ErrInvalid{{ .Type }} is returned when parsing an unknown {{ .Type }} name.
var ErrInvalid{{ .Type }} = errors.New("invalid {{ .Type }}")

var _{{ .Type }}_names = map[{{ .Type }}]string{
{{- range .Values }}
	{{ .Name }}: {{ printf "%q" .Text }},
{{- end }}
}

func (i {{ .Type }}) String() string {
	if s, ok := _{{ .Type }}_names[i]; ok {
		return s
	}
	return fmt.Sprintf("{{ .Type }}(%d)", int64(i))
}

// Parse{{ .Type }} returns the {{ .Type }} whose String form is s.
func Parse{{ .Type }}(s string) ({{ .Type }}, error) {
	for i, name := range _{{ .Type }}_names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid{{ .Type }}, s)
}
{{ if .GenerateFlag }}
func (i *{{ .Type }}) Set(s string) error {
	v, err := Parse{{ .Type }}(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i *{{ .Type }}) Type() string {
	return "{{ .Type }}"
}
{{ end }}`))
