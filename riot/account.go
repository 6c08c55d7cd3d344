package riot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"tilttracker/pkg/messages"
)

// Return type from the account_v1 endpoint.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Get the account of a player by it's Riot ID (name and tagline).
func (f *Fetcher) GetAccountByRiotId(gameName string, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		f.region, url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := f.authGet(reqURL)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %s#%s", messages.CouldNotFindPlayer, gameName, tagLine)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %d", messages.BadStatusCodeMsg, resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return &account, nil
}
