package bee

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func listPage(words []string) string {
	var b strings.Builder
	b.WriteString(`<html><body><h1>Answers</h1><ul class="answer-list">`)
	for _, w := range words {
		fmt.Fprintf(&b, "<li>%s</li>", w)
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

func TestExtractStructured(t *testing.T) {
	page := listPage(append([]string{"Click here for hints", "NYT"}, cleanAnswers...))

	words := ExtractWords(page, "ul.answer-list li")
	require.Equal(t, cleanAnswers, words)
}

func TestExtractStructuredLowercasesSource(t *testing.T) {
	page := listPage([]string{"abalone", "Banana", "abalone"})

	words := ExtractWords(page, "li")
	require.Equal(t, []string{"ABALONE", "BANANA"}, words)
}

func TestExtractLooseFallback(t *testing.T) {
	// answers rendered as prose, no list markup at all
	var b strings.Builder
	b.WriteString(`<html><body><p>Todays Answers for the Spelling Bee puzzle are `)
	b.WriteString(strings.Join(cleanAnswers, ", "))
	b.WriteString(` and that is all of them.</p></body></html>`)

	words := ExtractWords(b.String(), "li")
	require.Equal(t, cleanAnswers, words)
}

func TestExtractLooseSkipsBoilerplateAndProse(t *testing.T) {
	page := `<html><body>
		<h2>Todays Pangrams</h2>
		<p>ABALONE BANANA SALON NASAL</p>
	</body></html>`

	words := ExtractWords(page, "li")
	require.Equal(t, []string{"ABALONE", "BANANA", "SALON", "NASAL"}, words)
	require.NotContains(t, words, "PANGRAMS")
	require.NotContains(t, words, "TODAYS")
}

func TestExtractPrefersRicherStrategy(t *testing.T) {
	// structured pass finds 3 words, loose pass would find the same 3
	// plus nothing better, so the structured result stands
	page := listPage([]string{"ALONE", "LOANS", "SALON"})
	words := ExtractWords(page, "li")
	require.Equal(t, []string{"ALONE", "LOANS", "SALON"}, words)
}

func TestExtractNeverMergesStrategies(t *testing.T) {
	// 3 structured words plus 4 different prose words: the loose pass
	// wins on count but its output must not contain a union of both
	page := `<html><body>
		<ul><li>wxyz</li><li>qqqq</li><li>zzzz</li></ul>
		<p>ABALONE BANANA SALON NASAL</p>
	</body></html>`

	words := ExtractWords(page, "li")
	require.Len(t, words, 4)
	require.NotContains(t, words, "WXYZ")
}

func TestExtractRejectsImplausibleTokens(t *testing.T) {
	page := listPage([]string{"abc", "ANTIDISESTABLISHMENTARIAN", "two words", "REAL"})
	words := ExtractWords(page, "li")
	require.Equal(t, []string{"REAL"}, words)
}
