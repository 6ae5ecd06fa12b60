// Package store connects to the data store and manages the persisted week
// schedule and the offline asset cache.
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const scheduleBucket = "schedule"

var (
	// scheduleKey is the single versioned key the week schedule lives
	// under.
	scheduleKey = []byte("mhc-timetabler-schedule-v1")

	// legacyScheduleKey is the unversioned key used by a prior schema
	// version. Content found under it is migrated best-effort on open.
	legacyScheduleKey = []byte("mhc-timetabler-schedule")
)

var errTimetablerRunning = errors.New(
	"is timetabler already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) GetSchedule() ([]byte, error) {
	var raw []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(scheduleBucket)).Get(scheduleKey)
		if v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}

		return nil
	})

	return raw, err
}

func (c *Client) SaveSchedule(raw []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(scheduleBucket)).Put(scheduleKey, raw)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errTimetablerRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist
	// already, then carry over any legacy content.
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(scheduleBucket))
		if err != nil {
			return err
		}

		return migrateLegacyKey(tx)
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
