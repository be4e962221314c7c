// Package report turns a list of Alertmanager silences into Slack Block Kit
// messages. Slack caps the number of blocks per message, so a long silence
// list is split into multiple messages; the summary line only appears on the
// first one. Building the report is a pure transformation and never fails.
package report

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/alertmanager"
)

// Title heads every message of the report.
const Title = "Alertmanager Silences Report"

const (
	// BlockLimit is Slack's maximum number of blocks per message.
	BlockLimit = 50

	// reservedBlocks keeps room for the header, the summary section and the
	// divider below them.
	reservedBlocks = 3

	// blocksPerSilence is the section plus trailing divider each rendered
	// silence costs.
	blocksPerSilence = 2

	// MaxSilencesPerMessage is how many silences fit in one message once the
	// reserved blocks are accounted for.
	MaxSilencesPerMessage = (BlockLimit - reservedBlocks) / blocksPerSilence
)

// Summary tallies silences by state. States other than the three the
// Alertmanager API defines count toward Total only.
type Summary struct {
	Total   int
	Active  int
	Pending int
	Expired int
}

// Summarize counts the given silences by state.
func Summarize(silences []alertmanager.Silence) Summary {
	summary := Summary{Total: len(silences)}
	for _, silence := range silences {
		switch silence.Status.State {
		case alertmanager.StateActive:
			summary.Active++
		case alertmanager.StatePending:
			summary.Pending++
		case alertmanager.StateExpired:
			summary.Expired++
		}
	}
	return summary
}

// String renders the summary as the mrkdwn line shown on the first message.
func (s Summary) String() string {
	return fmt.Sprintf("*Total:* %d | *Active:* %d | *Pending:* %d | *Expired:* %d",
		s.Total, s.Active, s.Pending, s.Expired)
}

// Build converts silences into ordered Slack messages of at most BlockLimit
// blocks each. Every silence appears exactly once, in input order. An empty
// input still yields a single message reporting zero silences.
func Build(silences []alertmanager.Silence) [][]slack.Block {
	summary := Summarize(silences)
	chunks := chunkSilences(silences)

	batches := make([][]slack.Block, 0, len(chunks))
	for i, chunk := range chunks {
		title := Title
		if len(chunks) > 1 {
			title = fmt.Sprintf("%s (Part %d/%d)", Title, i+1, len(chunks))
		}

		blocks := []slack.Block{
			slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		}
		if i == 0 {
			blocks = append(blocks, newSectionBlock(summary.String()))
		}
		blocks = append(blocks, slack.NewDividerBlock())

		for _, silence := range chunk {
			blocks = append(blocks, newSectionBlock(renderSilence(silence)))
			blocks = append(blocks, slack.NewDividerBlock())
		}

		batches = append(batches, blocks)
	}

	return batches
}

// chunkSilences splits silences into consecutive chunks of at most
// MaxSilencesPerMessage, preserving order. An empty input yields one empty
// chunk so the report still gets its summary message.
func chunkSilences(silences []alertmanager.Silence) [][]alertmanager.Silence {
	if len(silences) == 0 {
		return make([][]alertmanager.Silence, 1)
	}

	var chunks [][]alertmanager.Silence
	for start := 0; start < len(silences); start += MaxSilencesPerMessage {
		end := start + MaxSilencesPerMessage
		if end > len(silences) {
			end = len(silences)
		}
		chunks = append(chunks, silences[start:end])
	}
	return chunks
}

func newSectionBlock(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}
