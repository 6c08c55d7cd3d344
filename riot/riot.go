// Package riot wraps the Riot API endpoints used by the tracker.
package riot

import (
	"tilttracker/riot/requests"
)

// DefaultRoutingRegion is the regional routing value for account and match lookups.
const DefaultRoutingRegion = "europe"

// Fetcher groups the Riot API endpoints behind a shared rate limiter.
type Fetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a instance of the fetcher for a given routing region.
func CreateFetcher(region string) *Fetcher {
	return &Fetcher{
		limiter: requests.CreateRateLimiter(),
		region:  region,
	}
}
