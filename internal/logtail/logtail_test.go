package logtail

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/rtail/internal/backward"
)

func TestLast(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero lines",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "negative",
			maxLines: -1,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := os.Open(logPath)
			if err != nil {
				t.Fatal(err)
			}
			defer file.Close()

			got, err := Last(file, tt.maxLines)
			if err != nil {
				t.Fatalf("Last() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Last() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// forwardTail reads input front to back and keeps the last n lines.
func forwardTail(t *testing.T, input string, n int) []string {
	t.Helper()
	var all []string
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		all = append(all, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if n <= 0 || len(all) == 0 {
		return nil
	}
	if n > len(all) {
		n = len(all)
	}
	return all[len(all)-n:]
}

func TestLast_MatchesForwardRead(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"single",
		"a\nb\nc\n",
		"a\nb\nc",
		"a\n\n\nb\n",
		"\n\nleading blanks\n",
		"trailing blanks\n\n\n",
		strings.Repeat("0123456789\n", 50),
		"mixed ümlaut\nlines\n\nend",
	}
	for i, input := range inputs {
		for _, n := range []int{0, 1, 2, 3, 5, 100} {
			for _, window := range []int{1, 4, backward.DefaultWindow} {
				got, err := Last(strings.NewReader(input), n, backward.WithWindow(window))
				if err != nil {
					t.Fatalf("input %d, n=%d: Last() error = %v", i, n, err)
				}
				want := forwardTail(t, input, n)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("input %d, n=%d, window=%d (-want +got):\n%s", i, n, window, diff)
				}
			}
		}
	}
}

func TestLast_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x\ny\nz\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	read := func() []string {
		file, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer file.Close()
		lines, err := Last(file, 2)
		if err != nil {
			t.Fatal(err)
		}
		return lines
	}

	first, second := read(), read()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second read differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y", "z"}, first); diff != "" {
		t.Errorf("Last() mismatch (-want +got):\n%s", diff)
	}
}

func TestLast_DecodeErrorReturnsNoLines(t *testing.T) {
	got, err := Last(strings.NewReader("ok\n\xff\nfine\n"), 3)
	if err == nil {
		t.Fatal("Last() returned nil error for invalid UTF-8")
	}
	if got != nil {
		t.Fatalf("Last() = %q, want no lines on error", got)
	}
}

func TestLast_DecodeErrorOutsideWindowIgnored(t *testing.T) {
	got, err := Last(strings.NewReader("\xff\nok\nfine\n"), 2)
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if diff := cmp.Diff([]string{"ok", "fine"}, got); diff != "" {
		t.Errorf("Last() mismatch (-want +got):\n%s", diff)
	}
}
