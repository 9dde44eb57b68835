package postgres

// SinkName labels metrics emitted by the PostgreSQL run repository.
const SinkName = "postgres"

// Error message constants for run persistence
const (
	ErrMsgFailedToBeginTx   = "failed to begin transaction"
	ErrMsgFailedToInsertRun = "failed to insert run"
	ErrMsgFailedToCommitTx  = "failed to commit transaction"
)
