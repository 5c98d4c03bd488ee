package delegation

const (
	KindDelegation = "DELEGATION"
	KindTransfer   = "TRANSFER"
)

const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// allowedTransitions is the state machine for a delegation's lifecycle.
// A missing key means the status is terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusSubmitted, StatusCancelled},
	StatusSubmitted: {StatusApproved, StatusRejected, StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validKind(kind string) bool {
	return kind == KindDelegation || kind == KindTransfer
}
