// Package pathkey computes the stable content hash PathKey defines: two
// paths with the same canonical node-key sequence and qualified-predicate
// sequence must collide to the same key.
package pathkey

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const delimiter = "\x1f"

// PathKey hashes nodeKeys and qualifiedPreds into a single stable string
// key. The two slices are expected to interleave as the path does
// (node, pred, node, pred, ..., node); callers pass already-canonicalized
// node keys and already-composed qualified predicate strings.
func PathKey(nodeKeys []string, qualifiedPreds []string) string {
	var b strings.Builder
	for _, k := range nodeKeys {
		b.WriteString(k)
		b.WriteString(delimiter)
	}
	b.WriteString(delimiter)
	for _, p := range qualifiedPreds {
		b.WriteString(p)
		b.WriteString(delimiter)
	}
	sum := xxhash.Sum64String(b.String())
	return strconv.FormatUint(sum, 36)
}

// EdgeKey hashes a single edge's endpoints and qualified predicate into
// the stable key used to identify that edge (and its synthesized inverse)
// in the merged summary.
func EdgeKey(subjectKey, qualifiedPredicate, objectKey string) string {
	return PathKey([]string{subjectKey, objectKey}, []string{qualifiedPredicate})
}
