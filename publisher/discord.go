// Package publisher posts scored match results to a Discord webhook.
package publisher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tilttracker/pkg/config"
	"tilttracker/pkg/messages"
)

const (
	webhookUsername = "TiltTracker"
	colorVictory    = 0x2ECC71
	colorDefeat     = 0xE74C3C
)

// MatchReport is everything the webhook message needs about a scored match.
type MatchReport struct {
	GameName     string
	TagLine      string
	ChampionName string
	Kills        int
	Deaths       int
	Assists      int
	DamageDealt  int
	DamageTaken  int
	Win          bool
	BaseScore    float64
	Points       int
	TotalPoints  int
	MatchId      string
	GameDuration int
	GameVersion  string
}

// Discord webhook payload.
type webhookPayload struct {
	Content  string  `json:"content"`
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Thumbnail   embedThumbnail `json:"thumbnail"`
	Fields      []embedField   `json:"fields"`
	Footer      embedFooter    `json:"footer"`
}

type embedThumbnail struct {
	URL string `json:"url"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

// Publisher sends match reports to a single Discord webhook.
type Publisher struct {
	webhookURL string
	client     *http.Client
}

// Create a publisher from the configured webhook URL.
func CreatePublisher() (*Publisher, error) {
	if config.Discord.WebhookURL == "" {
		return nil, errors.New(messages.WebhookRequiredMsg)
	}

	return &Publisher{
		webhookURL: config.Discord.WebhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// PublishMatchResult posts the embed for a single scored match.
func (p *Publisher) PublishMatchResult(report MatchReport) error {
	payload := webhookPayload{
		Content:  performanceMessage(report.BaseScore),
		Username: webhookUsername,
		Embeds:   []embed{createMatchEmbed(report)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	resp, err := p.client.Post(p.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", messages.RequestFailedMsg, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %d", messages.BadStatusCodeMsg, resp.StatusCode)
	}

	return nil
}

// Build the embed for a single match report.
func createMatchEmbed(report MatchReport) embed {
	color := colorVictory
	resultIcon := "✅"
	description := "🏆 Victory"
	if !report.Win {
		color = colorDefeat
		resultIcon = "❌"
		description = "💀 Defeat"
	}

	title := fmt.Sprintf("%s#%s - %s %s", report.GameName, report.TagLine, report.ChampionName, resultIcon)

	kdaRatio := float64(report.Kills+report.Assists) / float64(max(1, report.Deaths))

	points := strconv.Itoa(report.Points)
	if report.Points > 0 {
		points = "+" + points
	}

	return embed{
		Title:       title,
		Description: description,
		Color:       color,
		Thumbnail: embedThumbnail{
			URL: championImageURL(report.GameVersion, report.ChampionName),
		},
		Fields: []embedField{
			{
				Name:   "KDA",
				Value:  fmt.Sprintf("%d/%d/%d (%.2f)", report.Kills, report.Deaths, report.Assists, kdaRatio),
				Inline: true,
			},
			{
				Name:   "Damage to champions",
				Value:  formatThousands(report.DamageDealt),
				Inline: true,
			},
			{
				Name:   "Damage taken",
				Value:  formatThousands(report.DamageTaken),
				Inline: true,
			},
			{
				Name:   "Performance score",
				Value:  fmt.Sprintf("%.1f%%", report.BaseScore),
				Inline: true,
			},
			{
				Name:   "Points",
				Value:  points,
				Inline: true,
			},
			{
				Name:   "Total",
				Value:  strconv.Itoa(report.TotalPoints),
				Inline: true,
			},
		},
		Footer: embedFooter{
			Text: fmt.Sprintf("Duration: %d minutes | Match ID: %s", report.GameDuration/60, report.MatchId),
		},
	}
}

// performanceMessage maps the base score to a short flavor message.
func performanceMessage(baseScore float64) string {
	switch {
	case baseScore >= 90:
		return "🌟 Outstanding performance! Keep it up!"
	case baseScore >= 75:
		return "💪 Great performance!"
	case baseScore >= 60:
		return "👍 Good performance."
	case baseScore >= 45:
		return "😐 Average performance."
	case baseScore >= 30:
		return "😕 Below average performance."
	default:
		return "😢 Rough game. Don't give up!"
	}
}

// Thumbnail for the played champion on the DDragon.
// The match game version carries four segments, the DDragon wants major.minor.1.
func championImageURL(gameVersion string, championName string) string {
	segments := strings.SplitN(gameVersion, ".", 3)
	ddragonVersion := gameVersion
	if len(segments) >= 2 {
		ddragonVersion = segments[0] + "." + segments[1] + ".1"
	}
	return fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s.png", ddragonVersion, championName)
}

// Format a integer with spaces as thousands separators.
func formatThousands(value int) string {
	raw := strconv.Itoa(value)

	negative := false
	if len(raw) > 0 && raw[0] == '-' {
		negative = true
		raw = raw[1:]
	}

	var out []byte
	for i, digit := range []byte(raw) {
		if i > 0 && (len(raw)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, digit)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
