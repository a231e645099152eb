package booking

type Status string

const (
	StatusPendingCustomerSignature Status = "pending_customer_signature"
	StatusPendingOwnerSignature    Status = "pending_owner_signature"
	StatusCompleted                Status = "completed"
)

var Statuses = []Status{StatusPendingCustomerSignature, StatusPendingOwnerSignature, StatusCompleted}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingCustomerSignature, StatusPendingOwnerSignature, StatusCompleted:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// next is the only forward transition from each non-terminal state.
var next = map[Status]Status{
	StatusPendingCustomerSignature: StatusPendingOwnerSignature,
	StatusPendingOwnerSignature:    StatusCompleted,
}

// Transition validates a move from s to target.
func (s Status) Transition(target Status) error {
	if s.IsTerminal() {
		return ErrAlreadyCompleted
	}
	if next[s] != target {
		return ErrInvalidTransition
	}
	return nil
}

func (s Status) String() string { return string(s) }
