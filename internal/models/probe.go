package models

// ProbeReport aggregates the three sequential Helix calls made by the
// probe command. Stream is nil when the channel is offline.
type ProbeReport struct {
	User               TwitchUserInfo
	UserRateLimit      RateLimit
	FollowerTotal      uint64
	FollowersRateLimit RateLimit
	Stream             *Stream
	StreamRateLimit    RateLimit
}
