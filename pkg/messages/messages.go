// Package messages keeps the error and log messages shared between packages.
package messages

const (
	BadStatusCodeMsg   = "API returned a bad status code"
	CouldNotFindPlayer = "couldn't find the player"
	FailedToParseMsg   = "failed to parse API response"
	MatchNotAram       = "match is not an ARAM match"
	PlayerNotInMatch   = "player was not found in the match"
	RequestFailedMsg   = "API request failed"
	ScoringFailedMsg   = "scoring failed"
	WebhookRequiredMsg = "can't publish without a configured webhook URL"
)
