package company

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadList reads a companies file, one name per line, trimming whitespace
// and surrounding quotes and dropping empty lines.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open company list: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimSpace(strings.Trim(line, `"`))
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan company list: %w", err)
	}
	return names, nil
}
