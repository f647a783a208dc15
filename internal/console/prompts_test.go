package console

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func scannerFor(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestReadIntRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := readInt(scannerFor("abc\n"), &out, "n: "); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestReadExamCountAcceptsThree(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	count, err := readExamCount(scannerFor("3\n"), &out)
	if err != nil {
		t.Fatalf("read exam count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestReadExamCountEnforcesBounds(t *testing.T) {
	t.Parallel()

	// 2 - мало, 6 - много, 4 отклонено подтверждением, 5 подтверждено
	var out bytes.Buffer
	count, err := readExamCount(scannerFor("2\n6\n4\nнет\n5\nда\n"), &out)
	if err != nil {
		t.Fatalf("read exam count: %v", err)
	}
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
}

func TestReadExamCountAboveThreeNeedsConfirmation(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	count, err := readExamCount(scannerFor("4\nда\n"), &out)
	if err != nil {
		t.Fatalf("read exam count: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}

func TestReadYesNoVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  bool
	}{
		{"да\n", true},
		{"Да\n", true},
		{"y\n", true},
		{"нет\n", false},
		{"что-то\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := readYesNo(scannerFor(tc.input), &out, "? ")
		if err != nil {
			t.Fatalf("read yes/no %q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("answer %q = %v, want %v", tc.input, got, tc.want)
		}
	}
}
