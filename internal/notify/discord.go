package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sells-group/learning-loop/internal/metrics"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

const (
	colorBlue   = 0x3498DB // info
	colorYellow = 0xF1C40F // warning
	colorRed    = 0xE74C3C // critical
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAnomaly sends one anomaly as a Discord embed.
func (d *DiscordNotifier) SendAnomaly(ctx context.Context, a *domain.Anomaly) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(a)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(a *domain.Anomaly) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Anomaly: %s", a.Type),
		Color:       severityColor(a.Severity),
		Description: a.Description,
		Fields: []discordEmbedField{
			{Name: "Org", Value: a.OrgID, Inline: true},
			{Name: "Severity", Value: string(a.Severity), Inline: true},
			{Name: "Affected Items", Value: fmt.Sprintf("%d", len(a.AffectedItemIDs)), Inline: true},
		},
	}

	if a.ToolType != "" {
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "Tool", Value: string(a.ToolType), Inline: true})
	}
	if a.SuggestedAction != "" {
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "Suggested Action", Value: a.SuggestedAction})
	}

	return embed
}

func severityColor(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return colorRed
	case domain.SeverityWarning:
		return colorYellow
	default:
		return colorBlue
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationFailuresTotal.Inc()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

// compile-time interface check.
var _ Notifier = (*DiscordNotifier)(nil)
