package feed

// Catalog is an immutable, ordered snapshot of parsed episodes. The position of
// an episode in the catalog is its identifier. A Catalog is safe to share
// between goroutines.
type Catalog struct {
	episodes []Episode
}

// NewCatalog copies episodes into a new catalog
func NewCatalog(episodes []Episode) *Catalog {
	snapshot := make([]Episode, len(episodes))
	copy(snapshot, episodes)
	return &Catalog{episodes: snapshot}
}

// Len returns the number of episodes
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.episodes)
}

// Get returns the episode with the given id
func (c *Catalog) Get(id int) (Episode, bool) {
	if c == nil || id < 0 || id >= len(c.episodes) {
		return Episode{}, false
	}
	return c.episodes[id], true
}

// All returns a copy of every episode in order
func (c *Catalog) All() []Episode {
	if c == nil {
		return []Episode{}
	}
	out := make([]Episode, len(c.episodes))
	copy(out, c.episodes)
	return out
}
