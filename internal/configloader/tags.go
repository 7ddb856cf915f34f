package configloader

import (
	"slices"
	"strings"

	"github.com/yaklabco/goslang/pkg/lint"
)

// TagChecks returns the IDs of the checks carrying tag, sorted.
// It returns nil for an unknown tag.
func TagChecks(registry *lint.Registry, tag string) []string {
	var ids []string
	for _, check := range registry.Checks() {
		if slices.Contains(check.Tags(), tag) {
			ids = append(ids, check.ID())
		}
	}
	return ids
}

// Tags returns every tag used by a registered check, sorted.
func Tags(registry *lint.Registry) []string {
	var tags []string
	for _, check := range registry.Checks() {
		for _, tag := range check.Tags() {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)
	return tags
}

// ExpandRuleKeys resolves the keys given to --enable and --disable into
// check IDs. A key is a check ID, a check name, an alias such as "S3776",
// or a tag standing for every check that carries it. Keys that match
// nothing are returned separately, in input order.
func ExpandRuleKeys(registry *lint.Registry, keys []string) (ids, unknown []string) {
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if id, _, found := registry.Resolve(key); found {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
			continue
		}

		tagged := TagChecks(registry, key)
		if len(tagged) == 0 {
			unknown = append(unknown, key)
			continue
		}
		for _, id := range tagged {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids, unknown
}
