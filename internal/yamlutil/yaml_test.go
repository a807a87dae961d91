package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: test\ncount: 3\n"), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "test" || s.Count != 3 {
		t.Errorf("got %+v, want name=test count=3", s)
	}
}

func TestUnmarshal_Validation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("nil data error = %v, want ErrEmptyInput", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil dest error = %v, want ErrNilDestination", err)
	}

	big := []byte(strings.Repeat("a", MaxInputSize+1))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversize error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s)
	if err == nil {
		t.Fatal("unknown field should be rejected in strict mode")
	}
}
