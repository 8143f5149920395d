package models

// ProviderInfo describes one provider entry from the embedded catalog, as
// exposed to the admin screen's provider picker.
type ProviderInfo struct {
	ID          Provider `json:"id"`
	DisplayName string   `json:"displayName"`
	APIName     string   `json:"apiName"`
	EnvVar      string   `json:"envVar"`
	Selected    bool     `json:"selected"`
}
