package correctors

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// dictionaryFile is the on-disk shape of a typo map: categories of
// misspelling -> replacement pairs.
//
//	[mappings.common]
//	"teh" = "the"
//	"在見" = "再見"
type dictionaryFile struct {
	Mappings map[string]map[string]string `toml:"mappings"`
}

// Dictionary corrects text by exact substring replacement from a typo map.
// Replacements apply longest-first so overlapping entries behave
// deterministically.
type Dictionary struct {
	replacer *strings.Replacer
	size     int
}

// LoadDictionary reads a TOML typo map from path.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	var file dictionaryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}

	merged := make(map[string]string)
	for _, category := range file.Mappings {
		for typo, replacement := range category {
			if strings.TrimSpace(typo) == "" {
				continue
			}
			merged[typo] = replacement
		}
	}
	return NewDictionary(merged), nil
}

// NewDictionary builds a Dictionary from an in-memory typo map.
func NewDictionary(mappings map[string]string) *Dictionary {
	typos := make([]string, 0, len(mappings))
	for typo := range mappings {
		typos = append(typos, typo)
	}
	sort.Slice(typos, func(i, j int) bool {
		if len(typos[i]) != len(typos[j]) {
			return len(typos[i]) > len(typos[j])
		}
		return typos[i] < typos[j]
	})

	pairs := make([]string, 0, len(typos)*2)
	for _, typo := range typos {
		pairs = append(pairs, typo, mappings[typo])
	}
	return &Dictionary{replacer: strings.NewReplacer(pairs...), size: len(typos)}
}

// Len returns the number of loaded typo entries.
func (d *Dictionary) Len() int { return d.size }

func (d *Dictionary) Name() string { return "dictionary" }

// Correct applies the typo map. The neighboring-cue context is unused; the
// dictionary is context-free.
func (d *Dictionary) Correct(_ context.Context, text, _ string) (string, bool, error) {
	if d.size == 0 {
		return text, false, nil
	}
	corrected := d.replacer.Replace(text)
	return corrected, corrected != text, nil
}
