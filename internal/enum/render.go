package enum

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"
)

// DefaultName is the enum type name used when none is configured.
const DefaultName = "BsFieldEnum"

var (
	cIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	enumTmpl = template.Must(template.New("enum").Parse(`enum {{.Name}} {
{{- range .Entries}}
    {{.Name}} = {{.ID}},
{{- end}}
}`))
)

// Render renders entries as a C++ enum declaration named name.
// Entries are emitted in the given order.
func Render(name string, entries []Entry) ([]byte, error) {
	if !cIdent.MatchString(name) {
		return nil, fmt.Errorf("invalid enum name %q", name)
	}

	var buf bytes.Buffer

	err := enumTmpl.Execute(&buf, struct {
		Name    string
		Entries []Entry
	}{name, entries})
	if err != nil {
		return nil, fmt.Errorf("rendering enum %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
