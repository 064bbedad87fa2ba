package bee

import "fmt"

// RejectedError marks a source whose page fetched fine but yielded too
// few candidate answers to clear the validation gate.
type RejectedError struct {
	Source     string
	Candidates int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf(
		"%s: %d candidate words, need at least %d",
		e.Source, e.Candidates, minAnswerCount,
	)
}
