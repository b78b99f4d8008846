package domain

import "errors"

// ErrCampaignNotActive is returned when a transition requires an active row
// and the row has already moved on.
var ErrCampaignNotActive = errors.New("campaign is not active")
