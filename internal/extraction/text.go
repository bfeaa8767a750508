package extraction

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]{2,}`)

// CleanText normalizes raw job description text before prompting:
// line endings, collapsed runs of spaces, and excessive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(strings.TrimRight(line, " \t"), " ")
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			line = ""
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
