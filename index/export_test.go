package index

// ArenaLen exposes the arena size so tests can observe slot reuse.
func (ix *Index) ArenaLen() int { return len(ix.nodes) }
