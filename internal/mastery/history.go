package mastery

import "fmt"

// Outcome is one slot of the answer history.
type Outcome int8

const (
	Unanswered Outcome = iota
	Correct
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "correct":
		*o = Correct
	case "incorrect":
		*o = Incorrect
	case "unanswered":
		*o = Unanswered
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// OutcomeOf converts a graded answer to an Outcome.
func OutcomeOf(correct bool) Outcome {
	if correct {
		return Correct
	}
	return Incorrect
}

// History is a fixed-length FIFO of recent outcomes. It starts full of
// Unanswered slots; Record appends at the back and evicts the front, so
// Len never changes.
type History struct {
	slots []Outcome
	head  int // index of the oldest slot
}

// NewHistory creates a history of length n (minimum 1).
func NewHistory(n int) *History {
	if n < 1 {
		n = 1
	}
	return &History{slots: make([]Outcome, n)}
}

// Len returns the window length.
func (h *History) Len() int {
	return len(h.slots)
}

// Record pushes a graded answer and evicts the oldest slot.
func (h *History) Record(correct bool) {
	h.slots[h.head] = OutcomeOf(correct)
	h.head = (h.head + 1) % len(h.slots)
}

// Entries returns the window oldest first.
func (h *History) Entries() []Outcome {
	out := make([]Outcome, 0, len(h.slots))
	out = append(out, h.slots[h.head:]...)
	out = append(out, h.slots[:h.head]...)
	return out
}

// CorrectCount counts Correct slots. Unanswered and Incorrect both count
// against mastery.
func (h *History) CorrectCount() int {
	n := 0
	for _, o := range h.slots {
		if o == Correct {
			n++
		}
	}
	return n
}

// Achieved reports whether at least numerator slots are Correct.
func (h *History) Achieved(numerator int) bool {
	return h.CorrectCount() >= numerator
}

// Reset clears every slot back to Unanswered.
func (h *History) Reset() {
	for i := range h.slots {
		h.slots[i] = Unanswered
	}
	h.head = 0
}
