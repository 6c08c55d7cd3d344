package requests

import (
	"fmt"
	"net/http"
	"tilttracker/pkg/config"
	"time"
)

var client = &http.Client{
	Timeout: 15 * time.Second,
}

// Do a authenticated request to the Riot API.
// Return the response.
func AuthRequest(url string, method string) (*http.Response, error) {
	// Create the request for the given url.
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the request: %w", err)
	}

	if config.ApiKey == "" {
		panic("Can't do a authenticated request without the API Key.")
	}
	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.ApiKey)
	return client.Do(req)
}

// Create a simple request and return it.
func Request(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the request: %w", err)
	}
	return client.Do(req)
}
