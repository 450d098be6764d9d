// Package jsonx is the JSON codec of reports, baselines and table dumps.
// Field names are written in lowerCamelCase and the integer kinds that
// carry raw fixed-point values are written as strings so that readers
// parsing numbers as float64 do not lose bits.
package jsonx

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var _jsonx = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)

func init() {
	jsoniter.RegisterExtension(newQuotedIntExtension(reflect.Int32, reflect.Int64, reflect.Uint64))
	jsoniter.RegisterExtension(&camelCaseExtension{})
}
