package question

import (
	"errors"
	"fmt"

	"github.com/abhisek/adjacent/internal/randsrc"
)

// ErrNoTemplates is returned when there is nothing to choose from.
var ErrNoTemplates = errors.New("no question templates")

// ErrRange is returned for an index range outside the template list.
var ErrRange = errors.New("question range out of bounds")

// Choose picks a template uniformly from the inclusive index range
// [first, last]. Callers normalize the range beforehand; an out-of-bounds
// range is reported rather than clamped here.
func Choose(src randsrc.Source, templates []Template, first, last int) (Question, error) {
	if len(templates) == 0 {
		return Question{}, ErrNoTemplates
	}
	if first < 0 || last >= len(templates) || first > last {
		return Question{}, fmt.Errorf("%w: [%d, %d] with %d templates", ErrRange, first, last, len(templates))
	}

	idx := first + src.IntN(last-first+1)
	t := templates[idx]
	return Question{
		Index:  idx,
		Kind:   t.Kind,
		Prompt: t.Prompt(),
	}, nil
}
