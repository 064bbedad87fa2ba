package bee

import (
	"errors"
	"sort"
)

// No source reliably publishes the seven letters or the pangram list,
// so both get reconstructed from the accepted answers alone.

var (
	// the per-word letter-set intersection did not contain exactly
	// one letter, which means the word list is polluted (parse noise
	// or mixed-source contamination)
	ErrAmbiguousCenter = errors.New("no unique letter common to every answer")
	// fewer than seven distinct letters across all answers
	ErrTooFewLetters = errors.New("fewer than seven distinct letters in answers")
)

type Deduction struct {
	// the seven legal letters, unique, sorted alphabetically
	Letters string
	// the letter appearing in every answer
	CenterLetter string
	// answers using all seven letters, in answer order
	Pangrams []string
}

func letterSet(word string) map[byte]bool {
	set := map[byte]bool{}
	for i := 0; i < len(word); i++ {
		set[word[i]] = true
	}
	return set
}

// Deduce reconstructs puzzle metadata from a validated word list.
// A wrong letter is worse than no letter, so any inconsistency is an
// error and the caller falls through to the next source.
func Deduce(words []string) (Deduction, error) {
	if len(words) == 0 {
		return Deduction{}, ErrTooFewLetters
	}

	// count, for every letter, the words containing it and its total
	// occurrences; the center letter must appear in all words, the
	// seven real letters recur often enough to beat any parse noise
	wordsContaining := map[byte]int{}
	occurrences := map[byte]int{}
	for _, word := range words {
		for letter := range letterSet(word) {
			wordsContaining[letter]++
		}
		for i := 0; i < len(word); i++ {
			occurrences[word[i]]++
		}
	}

	var common []byte
	for letter, count := range wordsContaining {
		if count == len(words) {
			common = append(common, letter)
		}
	}
	if len(common) != 1 {
		return Deduction{}, ErrAmbiguousCenter
	}
	center := common[0]

	if len(occurrences) < 7 {
		return Deduction{}, ErrTooFewLetters
	}

	ranked := make([]byte, 0, len(occurrences))
	for letter := range occurrences {
		ranked = append(ranked, letter)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if occurrences[ranked[i]] != occurrences[ranked[j]] {
			return occurrences[ranked[i]] > occurrences[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	letters := ranked[:7]
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	legal := map[byte]bool{}
	for _, letter := range letters {
		legal[letter] = true
	}
	// the center appears in every word; if it still lost the
	// frequency ranking the list is too noisy to trust
	if !legal[center] {
		return Deduction{}, ErrAmbiguousCenter
	}

	var pangrams []string
	for _, word := range words {
		set := letterSet(word)
		covers := true
		for _, letter := range letters {
			if !set[letter] {
				covers = false
				break
			}
		}
		if covers {
			pangrams = append(pangrams, word)
		}
	}

	return Deduction{
		Letters:      string(letters),
		CenterLetter: string(center),
		Pangrams:     pangrams,
	}, nil
}
