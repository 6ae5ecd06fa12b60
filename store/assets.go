package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
)

// Asset is a cached copy of a static file served by the offline proxy.
type Asset struct {
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// AssetCache is a named cache of static assets, one bucket per cache
// version. Renaming the cache and dropping stale buckets is how a new asset
// version cuts over.
type AssetCache struct {
	db   *bolt.DB
	name string
}

// OpenAssetCache opens (or creates) the cache file and ensures the named
// bucket exists.
func OpenAssetCache(path, name string) (*AssetCache, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &AssetCache{db: db, name: name}, nil
}

func (c *AssetCache) Name() string {
	return c.name
}

// Put stores a copy of the asset under its request path.
func (c *AssetCache) Put(a *Asset) error {
	value, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(c.name)).Put([]byte(a.Path), value)
	})
}

// Get returns the cached asset for the request path, or nil when there is
// no cached copy.
func (c *AssetCache) Get(path string) (*Asset, error) {
	var a *Asset

	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(c.name)).Get([]byte(path))
		if v == nil {
			return nil
		}

		a = &Asset{}

		return json.Unmarshal(v, a)
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// DropStale deletes every cache bucket whose name differs from the current
// one. It is the activation step of a version cutover.
func (c *AssetCache) DropStale() error {
	return c.db.Update(func(tx *bolt.Tx) error {
		var stale [][]byte

		err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if string(name) != c.name {
				stale = append(stale, name)
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, name := range stale {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *AssetCache) Close() error {
	return c.db.Close()
}
