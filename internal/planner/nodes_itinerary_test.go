// README: Tests for prompt fragment helpers.
package planner

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdefgh", 4); got != "abcd..." {
		t.Errorf("truncate = %q, want %q", got, "abcd...")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("₹", 10) // 3 bytes per rune
	got := truncate(s, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("₹", 3)+"..." {
		t.Errorf("truncate = %q, want cut on a rune boundary", got)
	}
}
