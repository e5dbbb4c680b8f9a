package fileservice

// Content relinking: rewrite embedded foreign identifiers inside a
// decoded content tree so the duplicated subgraph stays internally
// consistent. The tree has unconstrained shape, so the walk is a generic
// transformer over mappings, sequences, and scalars rather than a fixed
// schema walk.

// componentFileKey marks a mapping field that identifies the source
// file of a reusable component.
const componentFileKey = "componentFile"

// mediaKey is the top-level subtree mapping media id -> descriptor.
const mediaKey = "media"

// relinkTree rewrites every recognized embedded identifier through the
// index and re-keys the media subtree. Identifiers without a mapping
// are left unchanged, which also makes relinking idempotent: keys
// already rewritten are absent from further matches.
func relinkTree(tree map[string]any, idx *IdentityIndex) map[string]any {
	relinkComponents(tree, idx)
	relinkMedia(tree, idx)
	return tree
}

// relinkComponents visits every node; mappings carrying a component
// source field get that field's value remapped. Pure value substitution,
// so traversal order does not matter.
func relinkComponents(node any, idx *IdentityIndex) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			relinkComponents(v, idx)
			if k == componentFileKey {
				if s, ok := v.(string); ok {
					n[k] = idx.remapString(s)
				}
			}
		}
	case []any:
		for _, v := range n {
			relinkComponents(v, idx)
		}
	}
}

// relinkMedia moves media descriptors to their new keys. An entry whose
// key has a mapping is re-keyed with its own id field updated to match;
// entries without a mapping keep their key.
func relinkMedia(tree map[string]any, idx *IdentityIndex) {
	media, ok := tree[mediaKey].(map[string]any)
	if !ok {
		return
	}
	for oldKey, v := range media {
		newKey := idx.remapString(oldKey)
		if newKey == oldKey {
			continue
		}
		if desc, ok := v.(map[string]any); ok {
			desc["id"] = newKey
		}
		media[newKey] = v
		delete(media, oldKey)
	}
}
