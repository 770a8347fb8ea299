package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Nightly Sweep Worker
// ============================================================================

// Log messages for nightly sweep worker operations
const (
	LogMsgSweepStarting  = "Nightly sweep starting"
	LogMsgSweepCompleted = "Nightly sweep completed"
	LogMsgSweepFailed    = "Nightly sweep failed"
	LogMsgSweepStandby   = "Nightly sweep on standby"
	LogMsgSweepApproach  = "Nightly sweep scheduled"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
