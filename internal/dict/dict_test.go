package dict

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryMembership(t *testing.T) {
	d := New([]string{"casa", "perro", "casa", ""})

	assert.True(t, d.Contains("casa"))
	assert.True(t, d.Contains("perro"))
	assert.False(t, d.Contains("gato"))
	assert.False(t, d.Contains(""))
	assert.Equal(t, 2, d.Len(), "duplicates and empty strings collapse")
}

func TestNilDictionaryIsEmpty(t *testing.T) {
	var d *Dictionary

	assert.False(t, d.Contains("casa"))
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Words())
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"bracketed list", `['casa', 'perro', 'gato']`, []string{"casa", "perro", "gato"}},
		{"bracketed double quotes", `["house", "dog"]`, []string{"house", "dog"}},
		{"plain lines", "casa\nperro\ngato\n", []string{"casa", "perro", "gato"}},
		{"whitespace separated", "casa perro  gato", []string{"casa", "perro", "gato"}},
		{"empty", "", nil},
		{"empty brackets", "[]", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Parse(test.content)
			assert.Equal(t, len(test.want), d.Len())
			for _, w := range test.want {
				assert.True(t, d.Contains(w), "missing %q", w)
			}
		})
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	paths := map[string]string{
		"SP": write("banco_SP.txt", `['casa', 'perro']`),
		"EN": write("banco_EN.txt", "house\ndog\n"),
	}

	banks, err := LoadAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.True(t, banks["SP"].Contains("perro"))
	assert.True(t, banks["EN"].Contains("house"))
}

func TestLoadAllMissingFile(t *testing.T) {
	paths := map[string]string{
		"SP": filepath.Join(t.TempDir(), "does-not-exist.txt"),
	}

	_, err := LoadAll(context.Background(), paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank SP")
}
