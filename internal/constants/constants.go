package constants

import "time"

const (
	SourceFetchTimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SourceMaxConnsPerHost  = 16
	SourceMaxResponseBytes = 32 << 20
)

const (
	DefaultLoadEventLimit = 20
	MaxLoadEventLimit     = 200
)

const ProgressTrackerPath = "/progress.v1.ProgressTracker/"
