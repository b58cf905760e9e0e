package cmd

import (
	"fmt"
	"os"
	"strings"
)

// loadSynonyms parses a synonym table file: one "word: syn1, syn2" line
// per entry, '#' lines as comments. Keys and values are lowercased.
func loadSynonyms(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonym file: %w", err)
	}

	table := map[string][]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(word))
		if key == "" {
			continue
		}
		for _, syn := range strings.Split(rest, ",") {
			syn = strings.ToLower(strings.TrimSpace(syn))
			if syn != "" && syn != key {
				table[key] = append(table[key], syn)
			}
		}
	}
	return table, nil
}
