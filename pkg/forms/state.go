package forms

// Kind - forma holati
type Kind int

const (
	Idle Kind = iota
	Submitting
	Succeeded
	Failed
)

func (k Kind) String() string {
	switch k {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the lifecycle of one form. Reason holds the UI string key shown
// in the notification banner once the submission is over.
type State struct {
	Kind   Kind
	Reason string
}

// ModalOpen reports whether the form's modal should stay open. A successful
// submission closes it; a failed one keeps it open with the entered values.
func (s State) ModalOpen() bool {
	return s.Kind == Submitting || s.Kind == Failed
}

// Busy reports whether a submission is in flight.
func (s State) Busy() bool {
	return s.Kind == Submitting
}

// Done reports whether the submission finished, either way.
func (s State) Done() bool {
	return s.Kind == Succeeded || s.Kind == Failed
}

func succeeded() State {
	return State{Kind: Succeeded, Reason: ReasonSuccess}
}

func failed(reason string) State {
	return State{Kind: Failed, Reason: reason}
}

// Banner matn kalitlari
const (
	ReasonSuccess     = "form.success"
	ReasonRequired    = "form.required"
	ReasonPhone       = "form.phoneError"
	ReasonImageSize   = "form.image_size_error"
	ReasonError       = "form.error"
	ReasonRateLimited = "form.rate_limited"
)
