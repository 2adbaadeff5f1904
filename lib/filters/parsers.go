package filters

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/utils"
)

// ParseStringFilter accepts "re:<regexp>", a glob with "*" or "?", or a plain name. Matching
// ignores case and accents.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	if rule == "" {
		return func(s string) bool {
			return false
		}, nil

	} else if strings.HasPrefix(rule, "re:") {
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid RE: %v", rule)
		}

		return func(s string) bool {
			return re.MatchString(s) || re.MatchString(utils.FoldName(s))
		}, nil

	} else if strings.ContainsAny(rule, "*?") {
		g, err := glob.Compile(utils.FoldName(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter: %v", rule)
		}

		return func(s string) bool {
			return g.Match(utils.FoldName(s))
		}, nil

	} else {
		folded := utils.FoldName(rule)

		return func(s string) bool {
			return utils.FoldName(s) == folded
		}, nil
	}
}

// ResolveUnitNames converts user patterns into catalog unit names, in catalog order. A nil
// slice selects every unit. Empty patterns are ignored, so []string{""} is an explicit
// empty selection.
func ResolveUnitNames(catalog *model.Catalog, patterns []string) ([]string, error) {
	return resolveNames("business unit", catalog.ListUnitNames(), patterns)
}

// ResolveRegionNames is the same as ResolveUnitNames, over the catalog regions.
func ResolveRegionNames(catalog *model.Catalog, patterns []string) ([]string, error) {
	return resolveNames("region", catalog.ListRegionNames(), patterns)
}

func resolveNames(kind string, names []string, patterns []string) ([]string, error) {
	if patterns == nil {
		return names, nil
	}

	selected := map[string]bool{}

	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}

		match, err := ParseStringFilter(p)
		if err != nil {
			return nil, err
		}

		found := lo.Filter(names, func(n string, _ int) bool { return match(n) })
		if len(found) == 0 {
			return nil, errors.Wrapf(ErrUnknownName, "%v %v", kind, p)
		}

		for _, n := range found {
			selected[n] = true
		}
	}

	return lo.Filter(names, func(n string, _ int) bool { return selected[n] }), nil
}

var ErrUnknownName = errors.New("nothing matches")
