package store

import (
	bolt "go.etcd.io/bbolt"
)

// migrateLegacyKey copies schedule content stored under the prior
// unversioned key to the current versioned key. The copy is best-effort:
// malformed content is carried over as-is and repaired at load time, and an
// existing versioned entry is never overwritten.
func migrateLegacyKey(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(scheduleBucket))

	legacy := bucket.Get(legacyScheduleKey)
	if legacy == nil {
		return nil
	}

	if bucket.Get(scheduleKey) == nil {
		if err := bucket.Put(scheduleKey, legacy); err != nil {
			return err
		}
	}

	return bucket.Delete(legacyScheduleKey)
}
