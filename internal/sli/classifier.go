package sli

import "strings"

// ClassifyOperation maps a detail token to its canonical operation.
func ClassifyOperation(token string) Operation {
	switch op := Operation(token); op {
	case OpTransfer, OpWithdraw, OpBalance:
		return op
	}
	if token == systemToken {
		return OpSystem
	}
	return OpUnknown
}

// ExtractErrorKind returns the error kind of a failed record.
//
// For transactional operations the kind is the first field following the
// operation name in the remainder, e.g. "ATM10025 TRANSFER TIMEOUT REF026"
// yields TIMEOUT. The search stops at the next occurrence of the operation
// name, so a message that repeats it ("TRANSFER TRANSFER TIMEOUT") finds no
// candidate and falls back to the detail token. Empty candidates and the bare
// reference prefix fall back the same way. Other operations always use the
// detail token.
func ExtractErrorKind(op Operation, detailToken, remainder string) string {
	if !op.IsTransactional() {
		return detailToken
	}

	parts := strings.Split(remainder, string(op))
	if len(parts) < 2 {
		return detailToken
	}

	fields := strings.Fields(parts[1])
	if len(fields) == 0 || fields[0] == referencePrefix {
		return detailToken
	}
	return fields[0]
}

// Classify assigns the operation, error kind and weekday of a record.
func Classify(rec LogRecord) Classification {
	c := Classification{
		Operation: ClassifyOperation(rec.DetailToken),
		Weekday:   ResolveWeekday(rec.Date),
	}
	if rec.Status == StatusError {
		c.ErrorKind = ExtractErrorKind(c.Operation, rec.DetailToken, rec.Remainder)
	}
	return c
}
