package repository

// Log messages
const (
	LogMsgTxRetry        = "Transient storage error, retrying transaction"
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
