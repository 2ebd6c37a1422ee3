package checkout

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Status is the submission status shown next to the form. Token is set only on
// success, Message only on error.
type Status struct {
	Phase   Phase  `json:"phase"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

func Idle() Status {
	return Status{Phase: PhaseIdle}
}

func Pending() Status {
	return Status{Phase: PhasePending}
}

func Succeeded(token string) Status {
	return Status{Phase: PhaseSuccess, Token: token}
}

func Failed(message string) Status {
	return Status{Phase: PhaseError, Message: message}
}

func (s Status) IsPending() bool {
	return s.Phase == PhasePending
}
