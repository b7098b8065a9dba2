// Package constants holds shared domain-level constants.
package constants

// Change feed provider identifiers.
const (
	ChangeFeedProviderGoogle = "google"
	ChangeFeedProviderNone   = "none"
)
