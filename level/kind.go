package level

import (
	"strings"

	"github.com/milk9111/ungravity/tmx"
)

type Kind string

const (
	KindNone  Kind = ""
	KindWall  Kind = "wall"
	KindGoal  Kind = "goal"
	KindStar  Kind = "star"
	KindSpawn Kind = "spawn"
)

var prefixes = []struct {
	kind     Kind
	prefixes []string
}{
	{KindWall, []string{"wall"}},
	{KindGoal, []string{"goal"}},
	{KindStar, []string{"star"}},
	{KindSpawn, []string{"goodball", "spawn"}},
}

// ResolveKind returns the role of o. A "kind" property wins; otherwise the
// name and then the type are matched by prefix.
func ResolveKind(o tmx.Object) Kind {
	if v, ok := o.Properties["kind"]; ok && v != "" {
		return parseKind(v)
	}

	name := strings.ToLower(o.Name)
	typ := strings.ToLower(o.Type)
	for _, p := range prefixes {
		if hasAnyPrefix(name, p.prefixes) || hasAnyPrefix(typ, p.prefixes) {
			return p.kind
		}
	}
	return KindNone
}

func parseKind(v string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(v))); k {
	case KindWall, KindGoal, KindStar, KindSpawn:
		return k
	default:
		return KindNone
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	if s == "" {
		return false
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
