package checkout

// Outcome is what a provider adapter resolves to: either an opaque provider
// token or a human-readable failure message. The zero value is a failure with
// the generic unknown-error message.
type Outcome struct {
	token   string
	message string
	err     error
}

func Token(token string) Outcome {
	return Outcome{token: token}
}

func Failure(message string) Outcome {
	return Outcome{message: message}
}

// FailureFrom converts an error raised at the adapter boundary into a Failure.
// The original error is kept for logging.
func FailureFrom(err error) Outcome {
	return Outcome{message: MessageFor(err), err: err}
}

func (o Outcome) Succeeded() bool {
	return o.token != ""
}

func (o Outcome) Token() string {
	return o.token
}

func (o Outcome) Message() string {
	if o.token == "" && o.message == "" {
		return UnknownErrorMessage
	}
	return o.message
}

func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) Status() Status {
	if o.Succeeded() {
		return Succeeded(o.token)
	}
	return Failed(o.Message())
}
