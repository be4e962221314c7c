package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/alertmanager"
)

func TestFormatTimestamp(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"2024-01-01T00:00:00Z", "2024-01-01 00:00:00"},
		{"2024-01-01T00:00:00.123Z", "2024-01-01 00:00:00"},
		{"2024-06-15T23:59:59Z", "2024-06-15 23:59:59"},
		{"not-a-timestamp", "not-a-timestamp"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatTimestamp(tc.input))
	}
}

func TestRenderMatcher(t *testing.T) {
	testCases := []struct {
		name     string
		matcher  alertmanager.Matcher
		expected string
	}{
		{
			name:     "equal",
			matcher:  alertmanager.Matcher{Name: "env", Value: "prod", IsEqual: true},
			expected: "`env=prod`",
		},
		{
			name:     "equal regex",
			matcher:  alertmanager.Matcher{Name: "env", Value: "prod-.*", IsEqual: true, IsRegex: true},
			expected: "`env=~prod-.*`",
		},
		{
			name:     "not equal",
			matcher:  alertmanager.Matcher{Name: "env", Value: "prod"},
			expected: "`env!=prod`",
		},
		{
			name:     "not equal regex",
			matcher:  alertmanager.Matcher{Name: "env", Value: "prod-.*", IsRegex: true},
			expected: "`env!=~prod-.*`",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderMatcher(tc.matcher))
		})
	}
}

func TestCommentPreview(t *testing.T) {
	testCases := []struct {
		name     string
		comment  string
		expected string
	}{
		{"empty", "", ""},
		{"dash placeholder", "-", ""},
		{"dot placeholder", ".", ""},
		{"short comment", "all good", "all good"},
		{"exactly 100 characters", strings.Repeat("a", 100), strings.Repeat("a", 100)},
		{"101 characters", strings.Repeat("a", 101), strings.Repeat("a", 100) + "..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, commentPreview(tc.comment))
		})
	}
}

func TestCommentPreviewMultibyte(t *testing.T) {
	got := commentPreview(strings.Repeat("é", 101))
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
	assert.True(t, utf8.ValidString(got), "truncation must not split a character")
}

func TestRenderSilence(t *testing.T) {
	silence := alertmanager.Silence{
		ID:     "abc-123",
		Status: alertmanager.SilenceStatus{State: "active"},
		Matchers: []alertmanager.Matcher{
			{Name: "alertname", Value: "TestAlert", IsEqual: true},
			{Name: "env", Value: "prod-.*", IsEqual: true, IsRegex: true},
		},
		StartsAt:  "2024-01-01T00:00:00Z",
		EndsAt:    "2024-01-02T00:00:00Z",
		CreatedBy: "alice",
		Comment:   "Planned maintenance",
	}

	expected := "*Status:* active, *CreatedBy:* alice, *Date:* 2024-01-01 00:00:00 → 2024-01-02 00:00:00\n" +
		"*Matchers:*\n" +
		"  • `alertname=TestAlert`\n" +
		"  • `env=~prod-.*`\n" +
		"*Comment:* _Planned maintenance_"
	assert.Equal(t, expected, renderSilence(silence))
}

func TestRenderSilencePlaceholderComment(t *testing.T) {
	silence := alertmanager.Silence{
		Status:    alertmanager.SilenceStatus{State: "expired"},
		Matchers:  []alertmanager.Matcher{{Name: "alertname", Value: "TestAlert", IsEqual: true}},
		StartsAt:  "2024-01-01T00:00:00Z",
		EndsAt:    "2024-01-02T00:00:00Z",
		CreatedBy: "bob",
		Comment:   "-",
	}

	assert.NotContains(t, renderSilence(silence), "*Comment:*")
}
