package driving

// IntelLinks are manual-reconnaissance search URLs for one surname.
type IntelLinks struct {
	Surname   string `json:"surname"`
	Italy     string `json:"italy"`
	Argentina string `json:"argentina"`
	USA       string `json:"usa"`
}

// RadarService is the onomastic radar: surname lookup and search dorks.
type RadarService interface {
	// Surnames returns the configured surnames containing filter, case-insensitively.
	Surnames(filter string) []string

	// Links builds the search URLs for a surname.
	Links(surname string) IntelLinks
}
