package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// collapses runs of whitespace into a single space and strips
// non-printable characters, which sites love to sprinkle into
// otherwise plain word lists.
func CleanText(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	out := innerWhitespace.ReplaceAllString(newStr.String(), " ")
	return strings.Trim(out, " \n\t")
}

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// StripTags replaces markup tags with newlines so tokens from
// adjacent elements never run together.
func StripTags(markup string) string {
	return tagRegex.ReplaceAllString(markup, "\n")
}
