package content

// CurrentVersion is the content schema version written by this build.
const CurrentVersion = 4

// Migrate raises the tree's version field to CurrentVersion. It is
// idempotent and monotonic: a tree already at or above CurrentVersion is
// returned unchanged.
func Migrate(tree map[string]any) map[string]any {
	if tree == nil {
		tree = map[string]any{}
	}
	if version(tree) < CurrentVersion {
		tree["version"] = CurrentVersion
	}
	return tree
}

func version(tree map[string]any) int {
	switch v := tree["version"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// PruneNulls removes null-valued mapping entries recursively, clearing
// fields the rewrite may have left behind before re-encoding.
func PruneNulls(tree map[string]any) map[string]any {
	for k, v := range tree {
		switch vv := v.(type) {
		case nil:
			delete(tree, k)
		case map[string]any:
			tree[k] = PruneNulls(vv)
		case []any:
			tree[k] = pruneNullsSeq(vv)
		}
	}
	return tree
}

func pruneNullsSeq(seq []any) []any {
	for i, v := range seq {
		switch vv := v.(type) {
		case map[string]any:
			seq[i] = PruneNulls(vv)
		case []any:
			seq[i] = pruneNullsSeq(vv)
		}
	}
	return seq
}
