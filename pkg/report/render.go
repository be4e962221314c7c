package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/alertmanager"
)

// maxCommentLength is how many characters of a silence comment are shown
// before it gets truncated with an ellipsis.
const maxCommentLength = 100

// FormatTimestamp turns an RFC3339 timestamp such as
// "2024-01-01T00:00:00.123Z" into "2024-01-01 00:00:00", dropping any
// sub-second fraction. This is cosmetic only: anything that does not parse is
// returned unchanged.
func FormatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("2006-01-02 15:04:05")
}

// renderMatcher renders a matcher as `name<op><~>value`, the same shape
// amtool prints.
func renderMatcher(m alertmanager.Matcher) string {
	operator := "!="
	if m.IsEqual {
		operator = "="
	}
	regexMarker := ""
	if m.IsRegex {
		regexMarker = "~"
	}
	return fmt.Sprintf("`%s%s%s%s`", m.Name, operator, regexMarker, m.Value)
}

// renderSilence produces the mrkdwn section text for one silence.
func renderSilence(s alertmanager.Silence) string {
	matcherLines := make([]string, 0, len(s.Matchers))
	for _, m := range s.Matchers {
		matcherLines = append(matcherLines, "  • "+renderMatcher(m))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Status:* %s, *CreatedBy:* %s, *Date:* %s → %s\n*Matchers:*\n%s",
		s.Status.State,
		s.CreatedBy,
		FormatTimestamp(s.StartsAt),
		FormatTimestamp(s.EndsAt),
		strings.Join(matcherLines, "\n"))

	if comment := commentPreview(s.Comment); comment != "" {
		fmt.Fprintf(&b, "\n*Comment:* _%s_", comment)
	}

	return b.String()
}

// commentPreview returns the comment trimmed to maxCommentLength characters,
// or "" when the comment is empty or a placeholder people use to skip the
// field. Truncation counts codepoints, not bytes, so multi-byte characters
// are never split.
func commentPreview(comment string) string {
	if comment == "" || comment == "-" || comment == "." {
		return ""
	}

	runes := []rune(comment)
	if len(runes) <= maxCommentLength {
		return comment
	}
	return string(runes[:maxCommentLength]) + "..."
}
