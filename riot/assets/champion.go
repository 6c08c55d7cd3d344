package assets

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"tilttracker/pkg/redis"
	"tilttracker/riot/requests"
)

// ChampionStore holds the DDragon class tags for every champion,
// keyed by the numeric champion id.
type ChampionStore struct {
	mu   sync.RWMutex
	tags map[int][]string
}

// Create a empty champion store.
// Load or Revalidate must be called before classifying.
func NewChampionStore() *ChampionStore {
	return &ChampionStore{
		tags: make(map[int][]string),
	}
}

// GetTags returns the class tags for a given champion id.
func (s *ChampionStore) GetTags(championId int) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags, ok := s.tags[championId]
	return tags, ok
}

// Len returns how many champions are loaded.
func (s *ChampionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tags)
}

// Load fills the store from the Redis cache.
// On a cache miss the tags are fetched from the DDragon instead.
func (s *ChampionStore) Load() error {
	client := redis.GetClient()

	cached, err := client.Get(ctx, championTagsKey)
	if err == nil {
		tags := make(map[int][]string)
		if err := json.Unmarshal([]byte(cached), &tags); err == nil && len(tags) > 0 {
			s.swap(tags)
			return nil
		}
	}

	return s.Revalidate()
}

// Revalidate fetches the champion tags from the DDragon and
// replaces both the in memory table and the Redis cache.
func (s *ChampionStore) Revalidate() error {
	tags, err := fetchChampionTags()
	if err != nil {
		return err
	}

	s.swap(tags)

	// Cache the new table. A failure here only costs a refetch later.
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("can't convert the champion tags to json: %v", err)
	}

	client := redis.GetClient()
	if err := client.Set(ctx, championTagsKey, encoded, 24*time.Hour); err != nil {
		return fmt.Errorf("can't set the champion tags on redis: %v", err)
	}

	return nil
}

// Replace the in memory table.
func (s *ChampionStore) swap(tags map[int][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tags = tags
}

// Fetch the champion.json from the DDragon and extract the tag table.
func fetchChampionTags() (map[int][]string, error) {
	latestVersion, err := GetLatestVersion()
	if err != nil {
		return nil, err
	}

	// Format the champion api url.
	url := fmt.Sprintf("%scdn/%s/data/%s/champion.json", ddragon, latestVersion, language)
	resp, err := requests.Request(url, "GET")
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champions: %v", err)
	}

	defer resp.Body.Close()

	// Read the champion json.
	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %v", err)
	}

	tags := make(map[int][]string, len(championsData.Data))
	for championKey, entry := range championsData.Data {
		championId, err := strconv.Atoi(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid champion key for %s: %v", championKey, err)
		}
		tags[championId] = entry.Tags
	}

	if len(tags) == 0 {
		return nil, fmt.Errorf("the DDragon returned no champions")
	}

	return tags, nil
}
