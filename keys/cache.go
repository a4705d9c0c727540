package keys

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// CachingDeriver memoizes the public keys returned by an underlying Deriver.
type CachingDeriver struct {
	deriver Deriver
	cache   *lru.Cache[string, []byte]
}

// NewCachingDeriver wraps deriver with an LRU cache holding up to size keys.
func NewCachingDeriver(deriver Deriver, size int) (*CachingDeriver, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key cache")
	}
	return &CachingDeriver{
		deriver: deriver,
		cache:   cache,
	}, nil
}

func (c *CachingDeriver) PublicKey(path []uint32) ([]byte, error) {
	p := PathString(path)
	if pk, ok := c.cache.Get(p); ok {
		return pk, nil
	}

	pk, err := c.deriver.PublicKey(path)
	if err != nil {
		return nil, err
	}
	c.cache.Add(p, pk)
	return pk, nil
}
