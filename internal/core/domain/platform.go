package domain

import "strings"

// Platform is the social channel a campaign promotes on.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// Platforms lists the supported channels in reconciliation order.
var Platforms = []Platform{PlatformFacebook, PlatformInstagram}

func (p Platform) Valid() bool {
	return p == PlatformFacebook || p == PlatformInstagram
}

// Title is the capitalised channel name embedded in external campaign names.
func (p Platform) Title() string {
	switch p {
	case PlatformFacebook:
		return "Facebook"
	case PlatformInstagram:
		return "Instagram"
	}
	return string(p)
}

// Tag is the bracketed channel prefix that leads every external campaign
// name, for example "[Instagram]".
func (p Platform) Tag() string {
	return "[" + p.Title() + "]"
}

// PlatformFromExternalName reads the channel from the leading tag of an
// external campaign name. Only the tag is consulted, so a tenant's campaign
// name mentioning another channel cannot change the attribution.
func PlatformFromExternalName(name string) (Platform, bool) {
	if !strings.HasPrefix(name, "[") {
		return "", false
	}
	end := strings.IndexByte(name, ']')
	if end < 0 {
		return "", false
	}
	tag := name[1:end]
	for _, p := range Platforms {
		if strings.EqualFold(tag, p.Title()) {
			return p, true
		}
	}
	return "", false
}
