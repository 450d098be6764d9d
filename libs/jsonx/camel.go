package jsonx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	jsoniter "github.com/json-iterator/go"
)

// camelCaseExtension renames snake_case and PascalCase fields to
// lowerCamelCase on output and accepts both spellings on input.
type camelCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *camelCaseExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		tag := binding.Field.Tag().Get("json")
		if tag == "-" {
			continue
		}

		name := binding.Field.Name()
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}
		if strings.Contains(name, "_") || isFirstCharUpper(name) {
			camel := strcase.ToLowerCamel(name)
			binding.ToNames = []string{camel}
			binding.FromNames = []string{camel, name}
		}
	}
}

func isFirstCharUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
