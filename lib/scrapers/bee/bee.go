package bee

import "time"

// Puzzle is the one record a run produces. When every source fails the
// record keeps its shape: empty strings and empty (never nil) slices,
// so downstream consumers always see valid, fully-populated JSON.
type Puzzle struct {
	Date         string   `json:"date"`
	Letters      string   `json:"letters"`
	CenterLetter string   `json:"centerLetter"`
	WordCount    int      `json:"wordCount"`
	Pangrams     []string `json:"pangrams"`
	Answers      []string `json:"answers"`
}

func EmptyPuzzle(date time.Time) Puzzle {
	return Puzzle{
		Date:     date.Format(time.DateOnly),
		Pangrams: []string{},
		Answers:  []string{},
	}
}
