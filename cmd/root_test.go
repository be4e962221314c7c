package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportOptionsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    reportOptions
		wantErr string
	}{
		{
			name: "all set",
			opts: reportOptions{alertmanagerURL: "http://localhost:9093", slackToken: "xoxb-token", slackChannel: "C123"},
		},
		{
			name:    "missing alertmanager url",
			opts:    reportOptions{slackToken: "xoxb-token", slackChannel: "C123"},
			wantErr: "no Alertmanager URL provided",
		},
		{
			name:    "missing slack token",
			opts:    reportOptions{alertmanagerURL: "http://localhost:9093", slackChannel: "C123"},
			wantErr: "no Slack bot token provided",
		},
		{
			name:    "missing slack channel",
			opts:    reportOptions{alertmanagerURL: "http://localhost:9093", slackToken: "xoxb-token"},
			wantErr: "no Slack channel provided",
		},
		{
			name: "dry run only needs the alertmanager url",
			opts: reportOptions{alertmanagerURL: "http://localhost:9093", dryRun: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestInitLogging(t *testing.T) {
	assert.NoError(t, initLogging("debug"))
	assert.NoError(t, initLogging("info"))

	err := initLogging("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
