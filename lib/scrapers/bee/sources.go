package bee

import (
	"strings"
	"time"
)

// Source describes one page hypothesized to publish the day's answers.
// Sites drift, so the structured-parse selector lives here as data
// rather than in code; a config file can override the whole list.
type Source struct {
	Name        string `json:"name"`
	UrlTemplate string `json:"url_template"`
	// Go time layout substituted into the {date} placeholder of
	// UrlTemplate. Empty for pages that only serve "today".
	DateFormat string `json:"date_format"`
	// goquery selector for elements whose text is a single answer
	ItemSelector string `json:"item_selector"`
}

func (s Source) Url(date time.Time) string {
	if !strings.Contains(s.UrlTemplate, "{date}") {
		return s.UrlTemplate
	}
	// slug-style formats want "january-2-2006" but Go layouts only
	// understand "January", so lowercase after formatting
	formatted := strings.ToLower(date.Format(s.DateFormat))
	return strings.ReplaceAll(s.UrlTemplate, "{date}", formatted)
}

// DefaultSources returns the fallback chain, most structurally
// reliable first. Order matters: the scraper short-circuits on the
// first source that survives validation and deduction.
func DefaultSources() []Source {
	return []Source{
		{
			Name:         "nytbee",
			UrlTemplate:  "https://nytbee.com/Bee_{date}.html",
			DateFormat:   "20060102",
			ItemSelector: "#main-answer-list li",
		},
		{
			Name:         "sbsolver",
			UrlTemplate:  "https://www.sbsolver.com/answers/{date}",
			DateFormat:   "2006-01-02",
			ItemSelector: "table.bee-set td.bee-hover a",
		},
		{
			Name:         "wordtips",
			UrlTemplate:  "https://word.tips/todays-nyt-spelling-bee-answers/",
			ItemSelector: "ul.answers-list li",
		},
		{
			Name:         "spellingbeetimes",
			UrlTemplate:  "https://spellingbeetimes.com/{date}/",
			DateFormat:   "2006/01/02",
			ItemSelector: "div.entry-content li",
		},
		{
			Name:         "beearchive",
			UrlTemplate:  "https://www.beearchive.net/puzzle/{date}",
			DateFormat:   "2006-01-02",
			ItemSelector: "ol.answer-grid li",
		},
		{
			Name:         "wordfinder",
			UrlTemplate:  "https://wordfinder.yourdictionary.com/blog/nyt-spelling-bee-answers/",
			ItemSelector: "article li",
		},
		{
			Name:         "techsterr",
			UrlTemplate:  "https://techsterr.com/spelling-bee-{date}-answers/",
			DateFormat:   "January-2-2006",
			ItemSelector: "div.post-content li",
		},
	}
}
