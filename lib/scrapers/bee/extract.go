package bee

import (
	"regexp"
	"strings"

	"beescraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// answers are always plain alphabetic tokens; anything shorter than 4
// letters is illegal in the puzzle and anything past 15 is noise
var answerToken = regexp.MustCompile(`^[A-Za-z]{4,15}$`)

// headings and navigation words that survive tag stripping and would
// otherwise look like answers to the loose pass
var boilerplate = map[string]bool{
	"ANSWERS": true, "ANSWER": true, "SPELLING": true, "PANGRAM": true,
	"PANGRAMS": true, "PUZZLE": true, "PUZZLES": true, "TODAY": true,
	"TODAYS": true, "YESTERDAY": true, "TOMORROW": true, "WORDS": true,
	"LETTERS": true, "LETTER": true, "CENTER": true, "HINTS": true,
	"HINT": true, "SOLUTION": true, "SOLUTIONS": true, "CLUES": true,
	"CLUE": true, "POINTS": true, "GENIUS": true, "QUEEN": true,
	"JANUARY": true, "FEBRUARY": true, "MARCH": true, "APRIL": true,
	"JUNE": true, "JULY": true, "AUGUST": true, "SEPTEMBER": true,
	"OCTOBER": true, "NOVEMBER": true, "DECEMBER": true,
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

// ExtractWords pulls candidate answers out of one source's markup.
// The structured pass over `selector` elements runs first; the loose
// token pass only gets a say when the structured pass comes up short,
// and even then the two results are never merged, the richer one wins.
func ExtractWords(markup, selector string) []string {
	structured := extractStructured(markup, selector)
	if len(structured) >= minAnswerCount {
		return structured
	}

	loose := extractLoose(markup)
	if len(loose) > len(structured) {
		return loose
	}
	return structured
}

func extractStructured(markup, selector string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	if selector == "" {
		selector = "li"
	}

	var words []string
	seen := map[string]bool{}
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		text := htmlutil.CleanText(sel.Text())
		if !answerToken.MatchString(text) {
			return
		}
		word := strings.ToUpper(text)
		if seen[word] {
			return
		}
		seen[word] = true
		words = append(words, word)
	})
	return words
}

var tokenSplit = regexp.MustCompile(`[^A-Za-z]+`)

func extractLoose(markup string) []string {
	text := htmlutil.StripTags(markup)

	var words []string
	seen := map[string]bool{}
	for _, token := range tokenSplit.Split(text, -1) {
		if !answerToken.MatchString(token) {
			continue
		}
		// prose is lowercase; answer lists are capitalized or
		// all-caps, so a lowercase first letter rules a token out
		if token[0] < 'A' || token[0] > 'Z' {
			continue
		}
		word := strings.ToUpper(token)
		if boilerplate[word] || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words
}
