package formatter

import (
	"errors"
	"testing"
)

type panickyStringer struct{}

func (panickyStringer) String() string { panic("boom") }

type countingStringer struct{ calls *int }

func (c countingStringer) String() string {
	*c.calls++
	return "counted"
}

type tempError struct{}

func (*tempError) Error() string { return "temporary" }

func TestFormat(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name     string
		template string
		args     []interface{}
		want     string
		wantErr  error
	}{
		{"two placeholders", "{} and {}", []interface{}{"x", "y"}, "x and y", nil},
		{"trailing error extracted", "{} failed", []interface{}{"x", errBoom}, "x failed", errBoom},
		{"trailing typed nil error not extracted", "{} failed", []interface{}{"x", (*tempError)(nil)}, "x failed", nil},
		{"trailing error consumed by placeholder", "{} {}", []interface{}{"x", errBoom}, "x boom", nil},
		{"only an error", "failed", []interface{}{errBoom}, "failed", errBoom},
		{"trailing non-error kept out", "{}", []interface{}{"x", "y"}, "x", nil},
		{"missing args stay literal", "{} {} {}", []interface{}{"a"}, "a {} {}", nil},
		{"surplus args dropped", "{}", []interface{}{"a", "b", "c"}, "a", nil},
		{"surplus args before error not extracted", "{}", []interface{}{"a", "b", errBoom}, "a", nil},
		{"no args", "plain {}", nil, "plain {}", nil},
		{"empty template", "", []interface{}{"x"}, "", nil},
		{"escaped placeholder", `\{} is {}`, []interface{}{"x"}, "{} is x", nil},
		{"double escaped placeholder", `C:\\{}`, []interface{}{"dir"}, `C:\dir`, nil},
		{"nil argument", "value={}", []interface{}{nil}, "value=null", nil},
		{"slice argument", "{}", []interface{}{[]int{1, 2, 3}}, "[1, 2, 3]", nil},
		{"nested slice argument", "{}", []interface{}{[][]string{{"a"}, {"b", "c"}}}, "[[a], [b, c]]", nil},
		{"array argument", "{}", []interface{}{[2]bool{true, false}}, "[true, false]", nil},
		{"nil slice argument", "{}", []interface{}{[]string(nil)}, "null", nil},
		{"panicking stringer", "v={}", []interface{}{panickyStringer{}}, "v=[FAILED toString()]", nil},
		{"number argument", "{} items", []interface{}{42}, "42 items", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.template, tt.args...)
			if got.Message != tt.want {
				t.Errorf("Format() message = %q, want %q", got.Message, tt.want)
			}
			if got.Err != tt.wantErr {
				t.Errorf("Format() err = %v, want %v", got.Err, tt.wantErr)
			}
		})
	}
}

func TestFormat_SelfReferentialSlice(t *testing.T) {
	s := []interface{}{1, nil}
	s[1] = s

	got := Format("{}", s)
	if got.Message != "[1, [...]]" {
		t.Errorf("Format() message = %q", got.Message)
	}
}

func TestFormatWithError(t *testing.T) {
	explicit := errors.New("explicit")
	trailing := errors.New("trailing")

	got := FormatWithError("{} failed with {}", []interface{}{"x", trailing}, explicit)
	if got.Message != "x failed with trailing" {
		t.Errorf("FormatWithError() message = %q", got.Message)
	}
	if got.Err != explicit {
		t.Errorf("FormatWithError() err = %v, want %v", got.Err, explicit)
	}

	got = FormatWithError("no args", nil, nil)
	if got.Message != "no args" || got.Err != nil {
		t.Errorf("FormatWithError() = %+v", got)
	}
}

func TestFormat_EvaluatesStringerOnce(t *testing.T) {
	calls := 0
	Format("{} {}", countingStringer{&calls}, "x")
	if calls != 1 {
		t.Errorf("String() called %d times, want 1", calls)
	}
}

func TestCountPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     int
	}{
		{"", 0},
		{"none", 0},
		{"{}", 1},
		{"{} and {}", 2},
		{`\{} and {}`, 1},
		{`\\{}`, 1},
		{"{{}}", 1},
		{"{ }", 0},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			if got := CountPlaceholders(tt.template); got != tt.want {
				t.Errorf("CountPlaceholders(%q) = %d, want %d", tt.template, got, tt.want)
			}
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	err := errors.New("boom")
	for i := 0; i < b.N; i++ {
		_ = Format("user {} failed to reach {} after {} tries", "alice", "db", 3, err)
	}
}
