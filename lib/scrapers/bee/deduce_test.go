package bee

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// every word contains A, seven distinct letters overall, one pangram
var cleanAnswers = []string{
	"ABALONE", "ABALONES", "BANANA", "BANANAS", "ALONE", "LOANS",
	"SALON", "NASAL", "BLASE", "BEANS", "LANES", "ALOES", "BALES",
	"SEASON", "ANNALS", "SEASONAL",
}

func TestDeduce(t *testing.T) {
	deduction, err := Deduce(cleanAnswers)
	require.NoError(t, err)

	require.Equal(t, "ABELNOS", deduction.Letters)
	require.Equal(t, "A", deduction.CenterLetter)
	require.Equal(t, []string{"ABALONES"}, deduction.Pangrams)

	// every pangram is itself an answer
	for _, pangram := range deduction.Pangrams {
		require.Contains(t, cleanAnswers, pangram)
	}
	require.Contains(t, deduction.Letters, deduction.CenterLetter)
}

func TestDeduceIsDeterministic(t *testing.T) {
	first, err := Deduce(cleanAnswers)
	require.NoError(t, err)
	second, err := Deduce(cleanAnswers)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("deduction differs between runs:\n%s", diff)
	}
}

func TestDeduceAmbiguousCenter(t *testing.T) {
	// A and B both appear in every word
	_, err := Deduce([]string{"ABLE", "BALE", "BEAM", "BARN", "BANJO", "ABBOT", "BRAVO"})
	require.ErrorIs(t, err, ErrAmbiguousCenter)
}

func TestDeduceNoCommonLetter(t *testing.T) {
	_, err := Deduce([]string{"ABLE", "DOGS", "FUZZ"})
	require.ErrorIs(t, err, ErrAmbiguousCenter)
}

func TestDeduceTooFewLetters(t *testing.T) {
	// only six distinct letters across the list
	_, err := Deduce([]string{"ALONE", "BALE", "BANAL", "LOAN", "BEAN"})
	require.ErrorIs(t, err, ErrTooFewLetters)
}

func TestDeduceEmpty(t *testing.T) {
	_, err := Deduce(nil)
	require.Error(t, err)
}
