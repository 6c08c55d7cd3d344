package watcher

import (
	"tilttracker/scoring"
	"tilttracker/tracker/services/testutil"
)

// Tag source stub used instead of the DDragon backed store.
type stubTagSource struct {
	tags map[int][]string
}

func (s *stubTagSource) GetTags(championId int) ([]string, bool) {
	tags, ok := s.tags[championId]
	return tags, ok
}

// Helper to initialize the mocks.
// The scoring engine is real, only the edges are mocked.
func setupTestService() (
	*WatcherService,
	*testutil.MockRiotClient,
	*testutil.MockResultPublisher,
	*testutil.MockMarkerStore,
	*testutil.MockPlayerRepository,
	*testutil.MockMatchRepository,
	*testutil.MockScoreRepository,
) {
	mockClient := new(testutil.MockRiotClient)
	mockPublisher := new(testutil.MockResultPublisher)
	mockMarkers := new(testutil.MockMarkerStore)
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockMatchRepo := new(testutil.MockMatchRepository)
	mockScoreRepo := new(testutil.MockScoreRepository)

	tagSource := &stubTagSource{
		tags: map[int][]string{
			54:  {"Tank", "Fighter"},
			22:  {"Marksman"},
			103: {"Mage", "Assassin"},
			86:  {"Fighter", "Tank"},
			16:  {"Support", "Mage"},
		},
	}

	engine := scoring.NewEngine(
		scoring.NewClassifier(tagSource),
		scoring.RankTableConverter{},
		nil,
	)

	service := NewWatcherService(
		mockClient,
		engine,
		mockPublisher,
		mockMarkers,
		testutil.NoopLogger{},
		mockPlayerRepo,
		mockMatchRepo,
		mockScoreRepo,
	)

	return service, mockClient, mockPublisher, mockMarkers, mockPlayerRepo, mockMatchRepo, mockScoreRepo
}
