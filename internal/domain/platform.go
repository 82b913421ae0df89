package domain

import "encoding/json"

// Platform identifies a content provider.
type Platform string

const (
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter"
	PlatformRSS       Platform = "RSS"
)

var allPlatforms = []Platform{
	PlatformTikTok,
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformRSS,
}

// Platforms returns every supported platform in display order.
func Platforms() []Platform {
	out := make([]Platform, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// ParsePlatform matches s against the supported platform names.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range allPlatforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// RawItem is one provider record as returned by a retrieval adapter.
// Its shape is provider specific and only the normalizer looks inside.
type RawItem = json.RawMessage
