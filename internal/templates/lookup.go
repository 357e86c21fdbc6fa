package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// Lookup is the capability shared by everything templates can index by key:
// plain mappings and structured view-model records. Records opt in by
// implementing the interface; maps go through the Mapping adapter.
type Lookup interface {
	// Lookup returns the value for key, and whether the key exists.
	Lookup(key string) (any, bool)
}

// Mapping adapts a plain map to the Lookup interface.
type Mapping map[string]any

// Lookup implements the Lookup interface.
func (m Mapping) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// GetItem resolves key against v, which may be a Lookup implementation or a
// plain map. Missing keys and unsupported values yield nil rather than an
// error so templates degrade gracefully.
func GetItem(v any, key string) any {
	switch src := v.(type) {
	case nil:
		return nil
	case Lookup:
		val, ok := src.Lookup(key)
		if !ok {
			return nil
		}
		return val
	case map[string]any:
		return src[key]
	case map[string]string:
		if val, ok := src[key]; ok {
			return val
		}
		return nil
	default:
		return nil
	}
}

// placeholderPattern matches {name}-style tokens in Interpolate patterns.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate substitutes {name}-style placeholders in pattern with values
// resolved from v via GetItem. If any placeholder cannot be resolved the
// original pattern is returned unchanged, so a template typo never renders a
// half-substituted string.
func Interpolate(pattern string, v any) string {
	matches := placeholderPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return pattern
	}

	replacements := make([]string, 0, len(matches)*2)
	for _, m := range matches {
		val := GetItem(v, m[1])
		if val == nil {
			return pattern
		}
		replacements = append(replacements, m[0], fmt.Sprint(val))
	}

	return strings.NewReplacer(replacements...).Replace(pattern)
}
