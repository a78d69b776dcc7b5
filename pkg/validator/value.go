package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind enumerates the shapes a bound value can take.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindList
	KindObject
)

var kindNames = [...]string{"absent", "bool", "int", "float", "text", "list", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a closed union over the shapes a validated field may hold.
// The zero Value is absent.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []Value
	fields map[string]Value
}

// Constructors for each Kind; ValueOf picks the right one for Go values.
func AbsentValue() Value             { return Value{} }
func BoolValue(b bool) Value         { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value         { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value     { return Value{kind: KindFloat, f: f} }
func TextValue(s string) Value       { return Value{kind: KindText, s: s} }
func ListValue(items ...Value) Value { return Value{kind: KindList, items: items} }

// ObjectValue wraps fields; a nil map becomes an empty object.
func ObjectValue(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, fields: fields}
}

// maxDepth bounds conversion of self-referencing structures.
const maxDepth = 32

// ValueOf converts an arbitrary Go value into a Value.
// Nil and nil pointers become absent, named scalar types keep their underlying kind,
// slices and arrays become lists, maps and structs (exported fields only) become objects.
func ValueOf(v any) Value {
	return valueOf(v, 0)
}

func valueOf(v any, depth int) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case bool:
		return BoolValue(x)
	case int:
		return IntValue(int64(x))
	case int8:
		return IntValue(int64(x))
	case int16:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case uint8:
		return IntValue(int64(x))
	case uint16:
		return IntValue(int64(x))
	case uint32:
		return IntValue(int64(x))
	case uint, uint64, uintptr:
		return fromUint(reflect.ValueOf(x).Uint())
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case string:
		return TextValue(x)
	case []byte:
		return TextValue(string(x))
	}
	return fromReflect(reflect.ValueOf(v), depth)
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return FloatValue(float64(u))
	}
	return IntValue(int64(u))
}

func fromReflect(rv reflect.Value, depth int) Value {
	if !rv.IsValid() || depth > maxDepth {
		return Value{}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return fromReflect(rv.Elem(), depth+1)
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float())
	case reflect.String:
		return TextValue(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return TextValue(string(rv.Bytes()))
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = fromElem(rv.Index(i), depth+1)
		}
		return ListValue(items...)
	case reflect.Map:
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[fmt.Sprint(iter.Key().Interface())] = fromElem(iter.Value(), depth+1)
		}
		return ObjectValue(fields)
	case reflect.Struct:
		t := rv.Type()
		fields := make(map[string]Value, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			fields[t.Field(i).Name] = fromElem(rv.Field(i), depth+1)
		}
		return ObjectValue(fields)
	case reflect.Complex64, reflect.Complex128:
		return TextValue(fmt.Sprint(rv.Complex()))
	default:
		// chan, func and unsafe pointers are opaque handles
		return ObjectValue(nil)
	}
}

func fromElem(rv reflect.Value, depth int) Value {
	if !rv.CanInterface() {
		return fromReflect(rv, depth)
	}
	return valueOf(rv.Interface(), depth)
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Items returns list elements; nil for other kinds.
func (v Value) Items() []Value { return v.items }

// Fields returns object fields; nil for other kinds.
func (v Value) Fields() map[string]Value { return v.fields }

// String renders the textual form used for length checks, case checks and messages.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ", ")
	case KindObject:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.fields[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Len is the rune count of text, the element count of lists and the field count of objects.
// Scalars are measured through their textual form.
func (v Value) Len() int {
	switch v.kind {
	case KindAbsent:
		return 0
	case KindList:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return utf8.RuneCountInString(v.String())
	}
}

// IsEmpty reports whether the value counts as missing.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindBool:
		return !v.b
	case KindInt:
		return v.i == 0
	case KindFloat:
		return v.f == 0
	case KindText:
		return v.s == ""
	case KindList:
		return len(v.items) == 0
	case KindObject:
		return len(v.fields) == 0
	default:
		return true
	}
}

// MaxExponent bounds the exponent part of numeric text. Text outside ±MaxExponent is not
// numeric, so comparisons never expand a decimal beyond the input length plus this bound.
const MaxExponent = 1000

var numericPattern = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// Decimal returns the numeric reading of the value.
// Integers, finite floats and numeric text are numeric; everything else is not.
func (v Value) Decimal() (decimal.Decimal, bool) {
	switch v.kind {
	case KindInt:
		return decimal.NewFromInt(v.i), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v.f), true
	case KindText:
		return parseDecimal(v.s)
	default:
		return decimal.Zero, false
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	m := numericPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || (m[2] == "" && m[3] == "") {
		return decimal.Zero, false
	}

	var b strings.Builder
	if m[1] == "-" {
		b.WriteByte('-')
	}
	if m[2] == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(m[2])
	}
	if m[3] != "" {
		b.WriteByte('.')
		b.WriteString(m[3])
	}
	if m[4] != "" {
		exp, err := strconv.Atoi(m[4])
		if err != nil || exp > MaxExponent || exp < -MaxExponent {
			return decimal.Zero, false
		}
		b.WriteByte('e')
		b.WriteString(m[4])
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Equal reports strict equality: same kind and same payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	case KindList:
		return slices.EqualFunc(v.items, other.items, Value.Equal)
	case KindObject:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, fv := range v.fields {
			ov, ok := other.fields[k]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// looseEqual compares numerically when both sides are numeric and textually otherwise.
func looseEqual(a, b Value) bool {
	if da, ok := a.Decimal(); ok {
		if db, ok := b.Decimal(); ok {
			return da.Equal(db)
		}
	}
	return a.String() == b.String()
}
