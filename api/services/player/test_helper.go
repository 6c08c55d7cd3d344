package playerservice

import (
	"tilttracker/api/cache"
	"tilttracker/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*PlayerService,
	*testutil.MockPlayerRepository,
	*testutil.MockPlayerRedisClient,
	*testutil.MockAccountResolver,
) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockRedis := new(testutil.MockPlayerRedisClient)
	mockAccounts := new(testutil.MockAccountResolver)

	service := &PlayerService{
		db:               new(gorm.DB),
		memCache:         cache.NewMemCache(),
		redis:            mockRedis,
		accounts:         mockAccounts,
		PlayerRepository: mockPlayerRepo,
	}

	return service, mockPlayerRepo, mockRedis, mockAccounts
}
