package mastery

// Phase is where the drill sits in the per-question cycle.
type Phase string

const (
	// PhaseIdle is before the first graph when auto-start is suppressed.
	PhaseIdle Phase = "idle"
	// PhaseAwaitingAnswer accepts one submission.
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	// PhaseGraded shows feedback and accepts a next-question request.
	PhaseGraded Phase = "graded"
	// PhaseTerminal is reached on mastery; only a host reset leaves it.
	PhaseTerminal Phase = "terminal"
)

// AfterGrade returns the phase that follows a graded answer.
func AfterGrade(achieved bool) Phase {
	if achieved {
		return PhaseTerminal
	}
	return PhaseGraded
}
