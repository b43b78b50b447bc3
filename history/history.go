// Package history remembers recently generated colors and suggests them back.
package history

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/where"
	"golang.org/x/exp/slices"
)

// Entry is a remembered color input.
type Entry struct {
	Input    string    `json:"input"`
	Uses     int       `json:"uses"`
	LastUsed time.Time `json:"last_used"`
}

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every remembered entry keyed by input.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Remember records a use of input. It does nothing when history.save is off.
func Remember(input string) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	entry, ok := saved[input]
	if !ok {
		entry = &Entry{Input: input}
		saved[input] = entry
	}
	entry.Uses++
	entry.LastUsed = time.Now()

	log.Debugf("remembered %s (%d uses)", input, entry.Uses)
	return cacher.Set(saved)
}

// Recent returns at most n entries, most recently used first. n <= 0 means all.
func Recent(n int) ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.LastUsed.Compare(a.LastUsed)
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Suggest returns remembered inputs fuzzy-matching partial, most used first.
// It returns nothing when history.suggestions is off.
func Suggest(partial string) []string {
	if !viper.GetBool(key.HistorySuggestions) {
		return []string{}
	}

	saved, err := Get()
	if err != nil {
		return []string{}
	}

	partial = strings.TrimSpace(partial)
	matches := lo.Filter(lo.Values(saved), func(e *Entry, _ int) bool {
		return fuzzy.MatchFold(partial, e.Input)
	})

	slices.SortFunc(matches, func(a, b *Entry) int {
		if a.Uses != b.Uses {
			return b.Uses - a.Uses
		}
		return strings.Compare(a.Input, b.Input)
	})

	return lo.Map(matches, func(e *Entry, _ int) string {
		return e.Input
	})
}

// Clear forgets every entry.
func Clear() error {
	log.Info("clearing history")
	return cacher.Set(make(map[string]*Entry))
}
