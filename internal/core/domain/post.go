package domain

import "time"

// ScheduledPost is a post already published by the content pipeline. Only
// published posts are read here.
type ScheduledPost struct {
	ID               string
	TenantID         string
	Status           string
	Content          string
	LinkURL          *string
	FacebookPostID   *string
	InstagramMediaID *string
	PublishedAt      *time.Time
}

// ExternalID returns the post identifier for the given channel, or "" when
// the post was never published there.
func (p ScheduledPost) ExternalID(platform Platform) string {
	var id *string
	switch platform {
	case PlatformFacebook:
		id = p.FacebookPostID
	case PlatformInstagram:
		id = p.InstagramMediaID
	}
	if id == nil {
		return ""
	}
	return *id
}
