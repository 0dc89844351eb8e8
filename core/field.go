package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a key-value pair handed to a logger by one of the structured
// adapters. Fields have no place in the sink protocol, so they are
// rendered into the message text as key=value pairs.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// FieldOf builds a Field from an arbitrary value, picking the most
// specific FieldType it can.
func FieldOf(key string, val interface{}) Field {
	switch v := val.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: v}
	case int:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int32:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: v}
	case uint:
		return Field{Key: key, Type: Uint64Type, Int64: int64(v)}
	case uint64:
		return Field{Key: key, Type: Uint64Type, Int64: int64(v)}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: v}
	case bool:
		return Field{Key: key, Type: BoolType, Int64: boolToInt64(v)}
	case time.Time:
		return Field{Key: key, Type: TimeType, Int64: v.UnixNano()}
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(v)}
	case error:
		if IsNilError(v) {
			return Field{Key: key, Type: ErrorType}
		}
		return Field{Key: key, Type: ErrorType, Str: v.Error()}
	default:
		return Field{Key: key, Type: AnyType, Any: val}
	}
}

// IsNilError reports whether err is nil or an interface holding a nil
// pointer, map, slice, func or chan.
func IsNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Uint64Type:
		return strconv.FormatUint(uint64(f.Int64), 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// AppendFields renders fields after msg as space separated key=value
// pairs. Values containing spaces are quoted.
func AppendFields(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}
	var b strings.Builder
	b.Grow(len(msg) + 16*len(fields))
	b.WriteString(msg)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		v := f.StringValue()
		if strings.ContainsAny(v, " \t\n\"") {
			v = strconv.Quote(v)
		}
		b.WriteString(v)
	}
	return b.String()
}
