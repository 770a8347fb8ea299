package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the floor for pool sizing; the pool keeps
	// at least this many connections warm so the first draw after a quiet
	// period does not pay the connect cost.
	DefaultMinConnections = 2

	// ConnectTimeout bounds the startup connectivity check.
	ConnectTimeout = 10 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgParseConnString = "failed to parse connection string"
	ErrMsgCreatePool      = "failed to create connection pool"
	ErrMsgPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgDatabaseConnected = "Connected to the database"
)
