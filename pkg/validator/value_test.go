package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

type status string

type profile struct {
	Name  string
	Age   int
	notes string
}

func TestValueOf_Kinds(t *testing.T) {
	var nilPtr *profile
	name := "john"

	tests := []struct {
		name  string
		input any
		kind  validator.Kind
	}{
		{"nil", nil, validator.KindAbsent},
		{"nil pointer", nilPtr, validator.KindAbsent},
		{"bool", true, validator.KindBool},
		{"int", 42, validator.KindInt},
		{"int8", int8(-3), validator.KindInt},
		{"uint32", uint32(7), validator.KindInt},
		{"huge uint64", uint64(math.MaxUint64), validator.KindFloat},
		{"float32", float32(1.5), validator.KindFloat},
		{"float64", 2.25, validator.KindFloat},
		{"string", "hi", validator.KindText},
		{"named string", status("active"), validator.KindText},
		{"bytes", []byte("raw"), validator.KindText},
		{"string pointer", &name, validator.KindText},
		{"slice", []string{"a", "b"}, validator.KindList},
		{"array", [2]int{1, 2}, validator.KindList},
		{"nil slice", []int(nil), validator.KindList},
		{"map", map[string]any{"a": 1}, validator.KindObject},
		{"struct", profile{Name: "x"}, validator.KindObject},
		{"struct pointer", &profile{}, validator.KindObject},
		{"func", func() {}, validator.KindObject},
		{"value passthrough", validator.TextValue("x"), validator.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, validator.ValueOf(tt.input).Kind())
		})
	}
}

func TestValueOf_StructExportedFieldsOnly(t *testing.T) {
	v := validator.ValueOf(profile{Name: "Ann", Age: 30, notes: "secret"})
	fields := v.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Ann", fields["Name"].String())
	assert.Equal(t, "30", fields["Age"].String())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"absent", nil, ""},
		{"true", true, "1"},
		{"false", false, ""},
		{"int", -12, "-12"},
		{"float", 10.50, "10.5"},
		{"whole float", 10.0, "10"},
		{"text", "abc", "abc"},
		{"list", []any{"a", 1, true}, "a, 1, 1"},
		{"object", map[string]int{"b": 2, "a": 1}, "{a: 1, b: 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ValueOf(tt.input).String())
		})
	}
}

func TestValue_Len(t *testing.T) {
	assert.Equal(t, 0, validator.ValueOf(nil).Len())
	assert.Equal(t, 5, validator.ValueOf("hello").Len())
	assert.Equal(t, 4, validator.ValueOf("ação").Len(), "counts runes, not bytes")
	assert.Equal(t, 3, validator.ValueOf([]int{1, 2, 3}).Len())
	assert.Equal(t, 1, validator.ValueOf(map[string]int{"a": 1}).Len())
	assert.Equal(t, 5, validator.ValueOf(12345).Len())
	assert.Equal(t, 3, validator.ValueOf(1.5).Len())
}

func TestValue_IsEmpty(t *testing.T) {
	empty := []any{nil, "", 0, 0.0, false, []string{}, map[string]any{}}
	for _, in := range empty {
		assert.True(t, validator.ValueOf(in).IsEmpty(), "%#v should be empty", in)
	}

	present := []any{"a", "0", "   ", 1, -1, 0.1, true, []int{0}, map[string]int{"k": 0}}
	for _, in := range present {
		assert.False(t, validator.ValueOf(in).IsEmpty(), "%#v should not be empty", in)
	}
}

func TestValue_Decimal(t *testing.T) {
	tests := []struct {
		input   any
		numeric bool
		want    string
	}{
		{42, true, "42"},
		{-1.25, true, "-1.25"},
		{"10", true, "10"},
		{" 3.5 ", true, "3.5"},
		{"+7", true, "7"},
		{"-.5", true, "-0.5"},
		{"5.", true, "5"},
		{"1e3", true, "1000"},
		{"2.5E-1", true, "0.25"},
		{"1E+2", true, "100"},
		{"1e1001", false, ""},
		{"1e-200000000", false, ""},
		{"", false, ""},
		{"abc", false, ""},
		{"1,5", false, ""},
		{"0x1A", false, ""},
		{".", false, ""},
		{"NaN", false, ""},
		{math.Inf(1), false, ""},
		{true, false, ""},
		{nil, false, ""},
		{[]int{1}, false, ""},
	}

	for _, tt := range tests {
		d, ok := validator.ValueOf(tt.input).Decimal()
		assert.Equal(t, tt.numeric, ok, "input %#v", tt.input)
		if tt.numeric {
			assert.Equal(t, tt.want, d.String(), "input %#v", tt.input)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, validator.ValueOf(nil).Equal(validator.AbsentValue()))
	assert.True(t, validator.ValueOf(5).Equal(validator.IntValue(5)))
	assert.False(t, validator.ValueOf(5).Equal(validator.TextValue("5")), "kinds differ")
	assert.False(t, validator.ValueOf(5).Equal(validator.FloatValue(5)), "kinds differ")
	assert.True(t, validator.ValueOf([]string{"a", "b"}).Equal(validator.ValueOf([]any{"a", "b"})))
	assert.False(t, validator.ValueOf([]string{"a", "b"}).Equal(validator.ValueOf([]string{"b", "a"})))
	assert.True(t, validator.ValueOf(map[string]int{"a": 1}).Equal(validator.ObjectValue(map[string]validator.Value{
		"a": validator.IntValue(1),
	})))
	assert.False(t, validator.ValueOf(map[string]int{"a": 1}).Equal(validator.ValueOf(map[string]int{"a": 2})))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "absent", validator.KindAbsent.String())
	assert.Equal(t, "object", validator.KindObject.String())
	assert.Equal(t, "kind(42)", validator.Kind(42).String())
}
