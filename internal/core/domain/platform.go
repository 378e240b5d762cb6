package domain

import "strings"

// Platform is an advertising channel a campaign ran on.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformLinkedIn Platform = "linkedin"
	PlatformSnapchat Platform = "snapchat"
	PlatformTikTok   Platform = "tiktok"
	PlatformReddit   Platform = "reddit"
)

// Platforms lists every supported channel in display order.
func Platforms() []Platform {
	return []Platform{PlatformFacebook, PlatformLinkedIn, PlatformSnapchat, PlatformTikTok, PlatformReddit}
}

// ParsePlatform maps a free-form channel name onto a Platform. Exports from
// the ad managers use "Meta" for Facebook, so that alias is accepted too.
func ParsePlatform(s string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "facebook", "meta", "fb", "instagram":
		return PlatformFacebook, true
	case "linkedin":
		return PlatformLinkedIn, true
	case "snapchat", "snap":
		return PlatformSnapchat, true
	case "tiktok":
		return PlatformTikTok, true
	case "reddit":
		return PlatformReddit, true
	default:
		return "", false
	}
}
