package resolve

import (
	"strings"

	radix "github.com/armon/go-radix"
)

// remappingTrie groups user remappings by Context in a radix tree so the
// selector can visit every declared context that is a prefix of a query
// context source name in a single WalkPath, the same typed-wrapper idiom
// the teacher's deducerTrie uses over github.com/armon/go-radix (there for
// LongestPrefix source-root matching; here for WalkPath, since spec.md
// §4.C needs every matching context tier, not just the longest).
type remappingTrie struct {
	t *radix.Tree
}

func newRemappingTrie(remappings []*UserRemapping) remappingTrie {
	rt := remappingTrie{t: radix.New()}
	for _, um := range remappings {
		group, _ := rt.t.Get(um.Context)
		if group == nil {
			rt.t.Insert(um.Context, []*UserRemapping{um})
		} else {
			rt.t.Insert(um.Context, append(group.([]*UserRemapping), um))
		}
	}
	return rt
}

// selectRemapping picks the best matching user remapping for
// (contextSourceName, directImport), per spec.md §4.C: the remapping whose
// Context is a prefix of contextSourceName and whose Prefix is a prefix of
// directImport, breaking ties by longest Context, then longest Prefix,
// then declaration order.
func (rt remappingTrie) selectRemapping(contextSourceName, directImport string) *UserRemapping {
	var (
		best       *UserRemapping
		bestCtxLen = -1
		bestPreLen = -1
	)

	rt.t.WalkPath(contextSourceName, func(ctx string, v interface{}) bool {
		group := v.([]*UserRemapping)
		for _, um := range group {
			if !strings.HasPrefix(directImport, um.Prefix) {
				continue
			}
			switch {
			case len(ctx) > bestCtxLen:
				best, bestCtxLen, bestPreLen = um, len(ctx), len(um.Prefix)
			case len(ctx) == bestCtxLen && len(um.Prefix) > bestPreLen:
				best, bestPreLen = um, len(um.Prefix)
			}
		}
		return false
	})

	return best
}
