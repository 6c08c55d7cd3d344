package publisher

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default report used across the tests.
func testReport() MatchReport {
	return MatchReport{
		GameName:     "Faker",
		TagLine:      "KR1",
		ChampionName: "Ahri",
		Kills:        12,
		Deaths:       3,
		Assists:      18,
		DamageDealt:  32450,
		DamageTaken:  18900,
		Win:          true,
		BaseScore:    82.4,
		Points:       300,
		TotalPoints:  1250,
		MatchId:      "EUW1_7000000001",
		GameDuration: 1260,
		GameVersion:  "14.21.585.1234",
	}
}

func TestPublishMatchResult(t *testing.T) {
	var received webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pub := &Publisher{
		webhookURL: server.URL,
		client:     &http.Client{Timeout: time.Second},
	}

	err := pub.PublishMatchResult(testReport())
	require.NoError(t, err)

	assert.Equal(t, "TiltTracker", received.Username)
	assert.Equal(t, "💪 Great performance!", received.Content)
	require.Len(t, received.Embeds, 1)

	matchEmbed := received.Embeds[0]
	assert.Equal(t, "Faker#KR1 - Ahri ✅", matchEmbed.Title)
	assert.Equal(t, "🏆 Victory", matchEmbed.Description)
	assert.Equal(t, colorVictory, matchEmbed.Color)
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/14.21.1/img/champion/Ahri.png", matchEmbed.Thumbnail.URL)
	assert.Equal(t, "Duration: 21 minutes | Match ID: EUW1_7000000001", matchEmbed.Footer.Text)

	require.Len(t, matchEmbed.Fields, 6)
	assert.Equal(t, "12/3/18 (10.00)", matchEmbed.Fields[0].Value)
	assert.Equal(t, "32 450", matchEmbed.Fields[1].Value)
	assert.Equal(t, "18 900", matchEmbed.Fields[2].Value)
	assert.Equal(t, "82.4%", matchEmbed.Fields[3].Value)
	assert.Equal(t, "+300", matchEmbed.Fields[4].Value)
	assert.Equal(t, "1250", matchEmbed.Fields[5].Value)
}

func TestPublishMatchResultDefeat(t *testing.T) {
	var received webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pub := &Publisher{
		webhookURL: server.URL,
		client:     &http.Client{Timeout: time.Second},
	}

	report := testReport()
	report.Win = false
	report.Points = -200
	report.BaseScore = 25.0

	err := pub.PublishMatchResult(report)
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	matchEmbed := received.Embeds[0]
	assert.Equal(t, "Faker#KR1 - Ahri ❌", matchEmbed.Title)
	assert.Equal(t, "💀 Defeat", matchEmbed.Description)
	assert.Equal(t, colorDefeat, matchEmbed.Color)
	assert.Equal(t, "-200", matchEmbed.Fields[4].Value)
	assert.Equal(t, "😢 Rough game. Don't give up!", received.Content)
}

func TestPublishMatchResultBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	pub := &Publisher{
		webhookURL: server.URL,
		client:     &http.Client{Timeout: time.Second},
	}

	err := pub.PublishMatchResult(testReport())
	assert.Error(t, err)
}

func TestPerformanceMessage(t *testing.T) {
	tests := []struct {
		name      string
		baseScore float64
		expected  string
	}{
		{"outstanding", 95, "🌟 Outstanding performance! Keep it up!"},
		{"outstandingBoundary", 90, "🌟 Outstanding performance! Keep it up!"},
		{"great", 80, "💪 Great performance!"},
		{"good", 65, "👍 Good performance."},
		{"average", 50, "😐 Average performance."},
		{"belowAverage", 35, "😕 Below average performance."},
		{"rough", 10, "😢 Rough game. Don't give up!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, performanceMessage(tt.baseScore))
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{32450, "32 450"},
		{1234567, "1 234 567"},
		{-4500, "-4 500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatThousands(tt.value))
	}
}

func TestZeroDeathsKdaRatio(t *testing.T) {
	var received webhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pub := &Publisher{
		webhookURL: server.URL,
		client:     &http.Client{Timeout: time.Second},
	}

	report := testReport()
	report.Deaths = 0

	err := pub.PublishMatchResult(report)
	require.NoError(t, err)
	assert.Equal(t, "12/0/18 (30.00)", received.Embeds[0].Fields[0].Value)
}
