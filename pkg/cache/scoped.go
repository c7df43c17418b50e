package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when one cache backend serves several deployments or
// users that must not see each other's entries.
//
// Example usage:
//
//	// Per-user keys for private graphs
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared results
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// EmbeddingKey generates a prefixed key for a planar embedding.
func (k *ScopedKeyer) EmbeddingKey(graphHash string) string {
	return k.prefix + k.inner.EmbeddingKey(graphHash)
}

// SefeKey generates a prefixed key for a simultaneous embedding.
func (k *ScopedKeyer) SefeKey(redHash, blueHash string) string {
	return k.prefix + k.inner.SefeKey(redHash, blueHash)
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(graphHash, opts)
}
