package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><body><ul><li>ABALONE</li><li><b>BANANA</b></li></ul></body></html>`,
	))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "ABALONEBANANA", GetText(doc))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "ABALONE", CleanText("  ABALONE \n"))
	require.Equal(t, "two words", CleanText("two \n\t  words"))
	require.Equal(t, "bell", CleanText("be\x07ll"))
}

func TestStripTags(t *testing.T) {
	out := StripTags(`<p>ALPHA</p><p>BETA</p>`)
	require.Equal(t, "\nALPHA\n\nBETA\n", out)
}
