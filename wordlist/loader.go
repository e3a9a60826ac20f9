package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads path as a newline-delimited word file: one word per line,
// trimmed of surrounding whitespace and case-folded to uppercase before
// being pushed. The loader does not filter blank lines — they are pushed as
// empty words, which later fail WordList.IsValid — because the external
// file format defines them as words, not comments.
func LoadFile(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %q: %w", path, err)
	}
	defer f.Close()

	wl := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		wl.Push(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading %q: %w", path, err)
	}

	return wl, nil
}
