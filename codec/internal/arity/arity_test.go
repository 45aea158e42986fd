package arity

import (
	"errors"
	"strings"
	"testing"
)

// parenthesize renders each layer so the nesting structure is visible in
// test expectations.
func parenthesize(parts []string) (string, error) {
	return "(" + strings.Join(parts, " ") + ")", nil
}

func letters(n int) []string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = string(rune('a' + i))
	}
	return fields
}

func TestNest(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		limit  int
		want   string
	}{
		{"empty", nil, 7, "()"},
		{"single", letters(1), 7, "(a)"},
		{"under limit", letters(3), 7, "(a b c)"},
		{"at limit", letters(7), 7, "(a b c d e f g)"},
		{"one over limit", letters(8), 7, "(a b c d e f g (h))"},
		{"two over limit", letters(9), 7, "(a b c d e f g (h i))"},
		{"two full chunks", letters(14), 7, "(a b c d e f g (h i j k l m n))"},
		{"two full chunks plus one", letters(15), 7, "(a b c d e f g (h i j k l m n (o)))"},
		{"limit one", letters(3), 1, "(a (b (c)))"},
		{"limit two", letters(5), 2, "(a b (c d (e)))"},
		{"huge limit", letters(4), 1 << 40, "(a b c d)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Nest(tc.fields, tc.limit, parenthesize)
			if err != nil {
				t.Fatalf("Nest() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Nest() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNest_LayerWidth(t *testing.T) {
	// Every layer carries at most limit fields plus one continuation.
	const limit = 3
	widest := 0
	compose := func(parts []string) (string, error) {
		if len(parts) > widest {
			widest = len(parts)
		}
		return strings.Join(parts, ""), nil
	}

	if _, err := Nest(letters(26), limit, compose); err != nil {
		t.Fatalf("Nest() error = %v", err)
	}
	if widest > limit+1 {
		t.Errorf("widest layer = %d components, want at most %d", widest, limit+1)
	}
}

func TestNest_ComposeError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	compose := func(parts []string) (string, error) {
		calls++
		if calls == 2 {
			return "", boom
		}
		return strings.Join(parts, ""), nil
	}

	_, err := Nest(letters(9), 7, compose)
	if !errors.Is(err, boom) {
		t.Errorf("Nest() error = %v, want %v", err, boom)
	}
}
