package engine

import "github.com/specvital/fwdetect/pkg/datasource"

// setCache holds the data source sets of one run, indexed by input position.
// It is filled before any pair is evaluated and only read afterwards, so
// workers share it without locking. It is discarded with the run.
type setCache struct {
	items []*datasource.Set
}

func newSetCache(capacity int) *setCache {
	return &setCache{items: make([]*datasource.Set, 0, capacity)}
}

func (c *setCache) add(set *datasource.Set) {
	c.items = append(c.items, set)
}

func (c *setCache) get(index int) *datasource.Set {
	return c.items[index]
}

func (c *setCache) size() int {
	return len(c.items)
}
