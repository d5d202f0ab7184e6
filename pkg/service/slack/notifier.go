package slack

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxHeaderLength is the Slack limit for header block text
const maxHeaderLength = 150

// Notifier posts mitigation updates to one channel
type Notifier struct {
	svc       Service
	channelID string
	baseURL   string
}

var _ interfaces.Notifier = &Notifier{}

// NewNotifier creates a Notifier. baseURL is used for deep links and may be
// empty.
func NewNotifier(svc Service, channelID, baseURL string) *Notifier {
	return &Notifier{
		svc:       svc,
		channelID: channelID,
		baseURL:   baseURL,
	}
}

// NotifyMitigation announces a successfully initiated mitigation
func (n *Notifier) NotifyMitigation(ctx context.Context, risk *model.ComponentRisk, option *model.MitigationOption, result *model.MitigationExecutionResult) error {
	blocks, text := MitigationBlocks(risk, option, result, n.baseURL)
	if _, err := n.svc.PostMessage(ctx, n.channelID, blocks, text); err != nil {
		return goerr.Wrap(err, "failed to notify mitigation",
			goerr.V(model.RiskIDKey, risk.ID),
			goerr.V(model.MitigationIDKey, result.MitigationID))
	}
	return nil
}

// MitigationBlocks renders the notification message and its fallback text
func MitigationBlocks(risk *model.ComponentRisk, option *model.MitigationOption, result *model.MitigationExecutionResult, baseURL string) ([]slack.Block, string) {
	title := result.MitigationID
	if option != nil {
		title = option.Title
	}
	text := fmt.Sprintf("Mitigation initiated for %s (%s): %s", risk.ComponentName, risk.ID, title)

	header := slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
		truncate(":rotating_light: "+title, maxHeaderLength), true, false))

	fields := []*slack.TextBlockObject{
		markdown(fmt.Sprintf("*Component*\n%s (%s)", risk.ComponentName, risk.ComponentID)),
		markdown(fmt.Sprintf("*Severity*\n%s", risk.Severity.Label())),
		markdown(fmt.Sprintf("*Supplier*\n%s", risk.SupplierName)),
		markdown(fmt.Sprintf("*Plant*\n%s", risk.PlantName)),
		markdown(fmt.Sprintf("*Reference*\n`%s`", result.ReferenceNumber)),
	}
	if result.EstimatedCompletionDate != nil {
		fields = append(fields, markdown(fmt.Sprintf("*Estimated completion*\n%s",
			result.EstimatedCompletionDate.Format("Jan 2, 2006"))))
	}

	blocks := []slack.Block{
		header,
		slack.NewSectionBlock(markdown(risk.RootCauseSummary), nil, nil),
		slack.NewSectionBlock(nil, fields, nil),
	}

	if link := riskLink(baseURL, risk.ID); link != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			markdown(fmt.Sprintf("<%s|Open in Control Tower>", link))))
	}

	return blocks, text
}

func markdown(s string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, s, false, false)
}

func riskLink(baseURL, riskID string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/?selected=" + url.QueryEscape(riskID)
}

// truncate cuts s to at most max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
