// Package sli turns transactional ATM log lines into reliability counters.
// It covers line matching, weekday bucketing, operation and error-kind
// classification, and single-pass aggregation.
package sli

// Status is the outcome recorded on a log line.
type Status string

// Supported statuses.
const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Operation is the canonical bucket every matched line is counted under.
type Operation string

// Canonical operations.
const (
	OpTransfer Operation = "TRANSFER"
	OpWithdraw Operation = "WITHDRAW"
	OpBalance  Operation = "BALANCE"
	OpSystem   Operation = "SYSTEM"
	OpUnknown  Operation = "UNKNOWN_OP"
)

const (
	// systemToken is the standalone error that is counted under OpSystem.
	systemToken = "CONNECTION_LOST"
	// referencePrefix is the token reference ids start with.
	referencePrefix = "REF"
)

// TransactionalOperations returns the operations shown in the per-operation
// report table, in display order.
func TransactionalOperations() []Operation {
	return []Operation{OpTransfer, OpWithdraw, OpBalance}
}

// IsTransactional reports whether op is TRANSFER, WITHDRAW or BALANCE.
func (op Operation) IsTransactional() bool {
	switch op {
	case OpTransfer, OpWithdraw, OpBalance:
		return true
	}
	return false
}

// LogRecord is one successfully matched log line.
type LogRecord struct {
	Date        string // YYYY-MM-DD as written
	Time        string // HH:MM:SS, only validated by the matcher
	Status      Status
	DetailToken string // operation name or standalone error name
	Remainder   string // text after the [STATUS] marker
}

// Classification is the result of classifying a LogRecord.
type Classification struct {
	Operation Operation
	ErrorKind string // empty for successful records
	Weekday   Weekday
}
