package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// monoMeasure 每个字符宽 10 像素
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"fits", "hello", 100, []string{"hello"}},
		{"wraps at spaces", "full stack developer", 100, []string{"full stack", "developer"}},
		{"collapses spaces", "a   b", 100, []string{"a b"}},
		{"long word broken", "abcdefghijkl", 50, []string{"abcde", "fghij", "kl"}},
		{"long word after short", "hi abcdefg", 50, []string{"hi", "abcde", "fg"}},
		{"keeps paragraphs", "one\ntwo", 100, []string{"one", "two"}},
		{"empty paragraph", "one\n\ntwo", 100, []string{"one", "", "two"}},
		{"multibyte", "♥♥♥♥", 20, []string{"♥♥", "♥♥"}},
		{"empty", "", 100, []string{""}},
		{"no width", "hello world", 0, []string{"hello world"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, monoMeasure, tt.maxWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapText(%q, %v) mismatch (-want +got):\n%s", tt.input, tt.maxWidth, diff)
			}
		})
	}
}

func TestWrapText_NilMeasure(t *testing.T) {
	got := WrapText("hello world", nil, 10)
	if len(got) != 1 || got[0] != "hello world" {
		t.Errorf("WrapText with nil measure = %v, want input unchanged", got)
	}
}

func TestFaceMeasure_NilFace(t *testing.T) {
	if got := FaceMeasure(nil)("abc"); got != 0 {
		t.Errorf("FaceMeasure(nil) = %v, want 0", got)
	}
}
