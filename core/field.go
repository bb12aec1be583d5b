package core

import (
	"strconv"
	"strings"
)

// Field is a key/value pair already rendered to text. Adapters convert
// structured attributes into Fields before handing them to a Logger as
// extra content.
type Field struct {
	Key   string
	Value string
}

// JoinFields renders fields as space separated key=value pairs. Values
// containing spaces or quotes are quoted.
func JoinFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		if strings.ContainsAny(f.Value, " \t\"=") {
			b.WriteString(strconv.Quote(f.Value))
		} else {
			b.WriteString(f.Value)
		}
	}
	return b.String()
}
