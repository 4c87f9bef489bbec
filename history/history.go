// Package history records the scripts that were run and suggests them back.
package history

import (
	"path/filepath"
	"strings"

	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Runs int    `json:"runs"`
	Path string `json:"path"`
}

var cacher = gache.New[map[string]*record](&gache.Options{
	Path:       where.History(),
	FileSystem: &filesystem.GacheFs{},
})

// Remember records a run of the script at path.
func Remember(path string) error {
	if !viper.GetBool(key.HistoryRemember) {
		return nil
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	records, expired, err := cacher.Get()
	if expired || err != nil || records == nil {
		records = make(map[string]*record)
	}

	if r, ok := records[path]; ok {
		r.Runs++
	} else {
		records[path] = &record{Runs: 1, Path: path}
	}

	return cacher.Set(records)
}

// Suggest returns the remembered scripts whose path fuzzy matches partial,
// the most run first.
func Suggest(partial string) []string {
	if !viper.GetBool(key.HistoryRemember) {
		return nil
	}

	records, expired, err := cacher.Get()
	if err != nil || expired || records == nil {
		return nil
	}

	partial = strings.TrimSpace(partial)
	matched := lo.Filter(lo.Values(records), func(r *record, _ int) bool {
		return fuzzy.MatchFold(partial, r.Path)
	})

	slices.SortFunc(matched, func(a, b *record) int {
		if a.Runs != b.Runs {
			return b.Runs - a.Runs
		}
		return strings.Compare(a.Path, b.Path)
	})

	return lo.Map(matched, func(r *record, _ int) string {
		return r.Path
	})
}

// Forget drops every remembered script.
func Forget() error {
	return cacher.Set(make(map[string]*record))
}
