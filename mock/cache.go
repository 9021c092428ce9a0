package mock

import "docdex"

var _ docdex.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of docdex.PageCache.
type PageCache struct {
	GetFn   func(url string) (*docdex.Page, bool)
	PutFn   func(url string, page *docdex.Page)
	ClearFn func()
	LenFn   func() int
	URLsFn  func() []string
}

func (c *PageCache) Get(url string) (*docdex.Page, bool) {
	return c.GetFn(url)
}

func (c *PageCache) Put(url string, page *docdex.Page) {
	c.PutFn(url, page)
}

func (c *PageCache) Clear() {
	c.ClearFn()
}

func (c *PageCache) Len() int {
	return c.LenFn()
}

func (c *PageCache) URLs() []string {
	return c.URLsFn()
}
