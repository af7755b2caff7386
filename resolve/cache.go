package resolve

// resolvedFileCache memoizes source_name -> ResolvedFile. Entries are
// append-only for the resolver's lifetime (spec.md §3).
type resolvedFileCache struct {
	entries map[string]*ResolvedFile
}

func newResolvedFileCache() *resolvedFileCache {
	return &resolvedFileCache{entries: make(map[string]*ResolvedFile)}
}

func (c *resolvedFileCache) get(sourceName string) (*ResolvedFile, bool) {
	rf, ok := c.entries[sourceName]
	return rf, ok
}

func (c *resolvedFileCache) put(rf *ResolvedFile) {
	c.entries[rf.SourceName] = rf
}
