package mailbox

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	blockTagRe    = regexp.MustCompile(`(?i)<\s*(br|/p|/div|/li|/tr|/h[1-6])\s*/?>`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
	replyHeaderRe = regexp.MustCompile(`(?i)^(on .+wrote:|.+(писал|написал)\(?а?\)?:|-+\s*original message\s*-+|-+\s*исходное сообщение\s*-+)$`)
)

var stripAll = bluemonday.StrictPolicy()

// HTMLToText drops all markup, keeping line breaks for block elements.
func HTMLToText(body string) string {
	withBreaks := blockTagRe.ReplaceAllString(body, "$0\n")
	text := html.UnescapeString(stripAll.Sanitize(withBreaks))
	return normalizeLines(text)
}

// CleanText removes quoted history and the signature from a reply body.
// Quoted lines start with ">"; history starts at a reply header such as
// "On ... wrote:"; the signature starts at the "-- " delimiter.
func CleanText(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if line == "-- " || trimmed == "--" {
			break
		}
		if replyHeaderRe.MatchString(trimmed) {
			break
		}
		if strings.HasPrefix(trimmed, ">") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	return normalizeLines(strings.Join(kept, "\n"))
}

func normalizeLines(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimSpace(blankRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
