package rules

import (
	"fmt"
	"hash/fnv"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

const defaultMemoSize = 32

// Memo caches merged rule lists keyed by a hash of the custom rule list, so
// repeated scans with the same rules skip validation and sorting. The cache
// is owned by its caller rather than being process-global; two generators
// never share one unless they share a Memo.
type Memo struct {
	logger *zap.Logger
	cache  *lru.Cache[uint64, []schemas.MappingRule]
}

// NewMemo builds a memo holding up to size merged lists; size <= 0 picks a
// small default.
func NewMemo(logger *zap.Logger, size int) *Memo {
	if size <= 0 {
		size = defaultMemoSize
	}
	// lru.New only fails on a non-positive size, which is clamped above.
	cache, _ := lru.New[uint64, []schemas.MappingRule](size)
	return &Memo{logger: logger, cache: cache}
}

// Merge returns the merged list for custom, computing and caching it on
// first sight. Callers must treat the returned slice as immutable.
func (m *Memo) Merge(custom []schemas.MappingRule) []schemas.MappingRule {
	key := hashRules(custom)
	if merged, ok := m.cache.Get(key); ok {
		return merged
	}
	merged := Merge(m.logger, custom)
	m.cache.Add(key, merged)
	return merged
}

// hashRules folds every rule field into an FNV-1a hash. Sizes hash through
// their CSS form, which is canonical per value.
func hashRules(rules []schemas.MappingRule) uint64 {
	h := fnv.New64a()
	for _, rule := range rules {
		fmt.Fprintf(h, "%s|%s|%d|%t|%s|", rule.Match.Tag, rule.Match.ClassContains, rule.Priority, rule.To.Skip, rule.To.Shape)
		for _, size := range []*schemas.Size{rule.To.Width, rule.To.Height, rule.To.BorderRadius} {
			if size != nil {
				h.Write([]byte(size.String()))
			}
			h.Write([]byte{0})
		}
		fmt.Fprintf(h, "%d|%s|", rule.To.Lines, rule.To.ClassName)
		styleKeys := make([]string, 0, len(rule.To.Style))
		for k := range rule.To.Style {
			styleKeys = append(styleKeys, k)
		}
		sort.Strings(styleKeys)
		for _, k := range styleKeys {
			fmt.Fprintf(h, "%s=%s,", k, rule.To.Style[k])
		}
		h.Write([]byte{';'})
	}
	return h.Sum64()
}
