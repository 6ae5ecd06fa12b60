package store

// DB is the schedule storage interface.
type DB interface {
	// GetSchedule returns the raw persisted week schedule, or nil when
	// nothing has been stored yet.
	GetSchedule() ([]byte, error)
	// SaveSchedule replaces the persisted week schedule. Last write wins.
	SaveSchedule(raw []byte) error
	// Close ends the database connection.
	Close() error
}
