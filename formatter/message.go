package formatter

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/philipp01105/bridgelog/core"
)

const (
	delimStart = '{'
	delimiter  = "{}"
	escapeChar = '\\'
)

// failedString replaces the text of an argument whose String or Error
// method panicked.
const failedString = "[FAILED toString()]"

// Tuple is the result of resolving one message template
type Tuple struct {
	// Message is the resolved text
	Message string
	// Err is the attached error, if any
	Err error
}

// Format resolves template against args. When args holds exactly one
// more value than template has placeholders and that value is an error,
// it is returned in Tuple.Err instead of being substituted. A nil error,
// typed or not, is never extracted.
func Format(template string, args ...interface{}) Tuple {
	var err error
	if n := len(args); n > 0 && n == CountPlaceholders(template)+1 {
		if e, ok := args[n-1].(error); ok && !core.IsNilError(e) {
			err = e
			args = args[:n-1]
		}
	}
	return Tuple{Message: substitute(template, args), Err: err}
}

// FormatWithError resolves template against every one of args and
// attaches err as given. No argument is ever extracted.
func FormatWithError(template string, args []interface{}, err error) Tuple {
	return Tuple{Message: substitute(template, args), Err: err}
}

// CountPlaceholders returns the number of unescaped placeholders in template.
func CountPlaceholders(template string) int {
	count := 0
	i := 0
	for {
		j := strings.Index(template[i:], delimiter)
		if j < 0 {
			return count
		}
		j += i
		if isEscaped(template, j) && !isDoubleEscaped(template, j) {
			i = j + 1
			continue
		}
		count++
		i = j + 2
	}
}

func isEscaped(template string, j int) bool {
	return j > 0 && template[j-1] == escapeChar
}

func isDoubleEscaped(template string, j int) bool {
	return j > 1 && template[j-2] == escapeChar
}

// substitute walks template once, consuming one argument per unescaped
// placeholder. It never fails.
func substitute(template string, args []interface{}) string {
	if len(args) == 0 || template == "" {
		return template
	}

	buf := getBuffer()
	defer putBuffer(buf)
	buf.Grow(len(template) + 16*len(args))

	i := 0
	for a := 0; a < len(args); a++ {
		j := strings.Index(template[i:], delimiter)
		if j < 0 {
			break
		}
		j += i

		switch {
		case isEscaped(template, j) && !isDoubleEscaped(template, j):
			// \{} renders a literal {} and consumes nothing
			a--
			buf.WriteString(template[i : j-1])
			buf.WriteByte(delimStart)
			i = j + 1
		case isEscaped(template, j):
			// \\{} renders one backslash, then the argument
			buf.WriteString(template[i : j-1])
			appendArg(buf, args[a], nil)
			i = j + 2
		default:
			buf.WriteString(template[i:j])
			appendArg(buf, args[a], nil)
			i = j + 2
		}
	}
	buf.WriteString(template[i:])

	return buf.String()
}

// appendArg renders one argument. Slices and arrays are rendered element
// by element; seen guards against slices that contain themselves.
func appendArg(buf *bytes.Buffer, arg interface{}, seen map[uintptr]bool) {
	if arg == nil {
		buf.WriteString("null")
		return
	}

	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			buf.WriteString("null")
			return
		}
		ptr := v.Pointer()
		if seen[ptr] && v.Len() > 0 {
			buf.WriteString("[...]")
			return
		}
		if seen == nil {
			seen = make(map[uintptr]bool)
		}
		seen[ptr] = true
		appendElems(buf, v, seen)
		delete(seen, ptr)
	case reflect.Array:
		appendElems(buf, v, seen)
	default:
		buf.WriteString(safeString(arg))
	}
}

func appendElems(buf *bytes.Buffer, v reflect.Value, seen map[uintptr]bool) {
	buf.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		elem := v.Index(i)
		if !elem.CanInterface() {
			buf.WriteString(failedString)
			continue
		}
		appendArg(buf, elem.Interface(), seen)
	}
	buf.WriteByte(']')
}

// safeString renders a single value, recovering from panicking String or
// Error methods.
func safeString(arg interface{}) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = failedString
		}
	}()

	switch v := arg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(arg)
	}
}
