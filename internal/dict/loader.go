package dict

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Load reads a word bank file and builds a Dictionary from it.
//
// Two formats are accepted: the legacy bracketed list used by the original
// bank exports (`['casa', 'perro', ...]`) and plain text with one or more
// whitespace-separated words per line.
func Load(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word bank %s: %w", path, err)
	}
	return Parse(string(raw)), nil
}

// Parse builds a Dictionary from raw word bank content. See Load for the
// accepted formats.
func Parse(content string) *Dictionary {
	content = strings.TrimSpace(content)

	var tokens []string
	if strings.HasPrefix(content, "[") {
		cleaned := strings.NewReplacer("[", "", "]", "", "'", "", `"`, "").Replace(content)
		tokens = strings.Split(cleaned, ",")
	} else {
		tokens = strings.Fields(content)
	}

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if w := strings.TrimSpace(t); w != "" {
			words = append(words, w)
		}
	}
	return New(words)
}

// LoadAll loads every configured bank concurrently. The paths map is keyed
// by language code; the result carries the same keys. Any single failure
// aborts the load.
func LoadAll(ctx context.Context, paths map[string]string) (map[string]*Dictionary, error) {
	var mu sync.Mutex
	banks := make(map[string]*Dictionary, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for code, path := range paths {
		g.Go(func() error {
			d, err := Load(path)
			if err != nil {
				return fmt.Errorf("bank %s: %w", code, err)
			}
			mu.Lock()
			banks[code] = d
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return banks, nil
}
