package domain

// MetaIntegration holds a tenant's connection to the advertising platform.
type MetaIntegration struct {
	TenantID                string
	FacebookConnected       bool
	FacebookPageAccessToken string
	FacebookPageID          string
	InstagramAccountID      string
	AdAccountID             string
}

// Usable reports whether the integration is connected and carries a token.
func (m *MetaIntegration) Usable() bool {
	return m != nil && m.FacebookConnected && m.FacebookPageAccessToken != ""
}

// HasAdAccount reports whether the full campaign protocol can be used instead
// of the boost fallback.
func (m *MetaIntegration) HasAdAccount() bool {
	return m != nil && m.AdAccountID != ""
}
