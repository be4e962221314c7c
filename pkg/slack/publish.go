// Package slack posts silence reports to a Slack channel through the Web API.
package slack

import (
	"context"
	"fmt"
	"time"

	goslack "github.com/slack-go/slack"
)

// defaultPause is how long to wait between consecutive messages so a long
// report does not trip Slack's rate limits.
const defaultPause = time.Second

// fallbackText is the plain-text notification shown where blocks cannot be
// rendered.
const fallbackText = "Alertmanager silences report"

// Publisher posts report messages to a Slack channel, one at a time and in
// order.
type Publisher struct {
	client *goslack.Client

	// Pause is the delay between consecutive messages.
	Pause time.Duration
}

// NewPublisher creates a Publisher authenticating with the given bot token.
// Extra options are passed through to the underlying Slack client.
func NewPublisher(token string, opts ...goslack.Option) *Publisher {
	return &Publisher{
		client: goslack.New(token, opts...),
		Pause:  defaultPause,
	}
}

// PublishReport posts each message of the report to the channel, in order.
// The first failure aborts the run; later messages are never attempted out of
// order or after an error. Slack's own error string (e.g. channel_not_found)
// is included in the returned error when the API reports ok=false.
func (p *Publisher) PublishReport(ctx context.Context, channelID string, batches [][]goslack.Block) error {
	for i, blocks := range batches {
		if i > 0 && p.Pause > 0 {
			select {
			case <-time.After(p.Pause):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		_, _, err := p.client.PostMessageContext(ctx, channelID,
			goslack.MsgOptionBlocks(blocks...),
			goslack.MsgOptionText(fallbackText, false),
		)
		if err != nil {
			return fmt.Errorf("failed to post message %d/%d to Slack: %w", i+1, len(batches), err)
		}
	}

	return nil
}
