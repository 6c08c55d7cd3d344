package assets

import "context"

// Consts used across the package.
const (
	ddragon         = "https://ddragon.leagueoflegends.com/"
	versionKey      = "ddragon:versions"
	championTagsKey = "ddragon:champion_tags"
	language        = "en_US"
)

// Default context.
var ctx = context.Background()

// Definition for extracting the champion data.
type fullChampion struct {
	Data map[string]championEntry `json:"data"`
}

// Single champion entry on the DDragon champion.json.
// The key is the numeric champion id, sent as a string.
type championEntry struct {
	Key  string   `json:"key"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}
