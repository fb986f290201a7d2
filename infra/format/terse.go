package format

import (
	"fmt"
	"reflect"
	"strings"
)

// NewTerseFormatter returns formatter printing one entry name per line
func NewTerseFormatter() Formatter {
	return &terseFormatter{}
}

type terseFormatter struct {
}

// Format formats slice into list of names, one per line. The first field of
// the element type is the name.
func (f *terseFormatter) Format(slice interface{}) string {
	sliceValue := reflect.ValueOf(slice)
	lines := make([]string, 0, sliceValue.Len())
	for i := 0; i < sliceValue.Len(); i++ {
		lines = append(lines, fmt.Sprintf("%v", sliceValue.Index(i).Field(0).Interface()))
	}
	return strings.Join(lines, "\n")
}
