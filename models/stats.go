package models

// WebhookStats summarises registered webhooks.
type WebhookStats struct {
	Total      int      `json:"total"`
	Active     int      `json:"active"`
	Inactive   int      `json:"inactive"`
	Efficiency *float64 `json:"efficiency,omitempty"`
}

// CacheInfo describes the backend notice cache.
type CacheInfo struct {
	Size          int     `json:"size"`
	LastUpdated   *string `json:"lastUpdated"`
	MaxSize       int     `json:"maxSize"`
	IsInitialized *bool   `json:"isInitialized,omitempty"`
}

// SystemStats is returned by the stats endpoint.
type SystemStats struct {
	Webhooks WebhookStats `json:"webhooks"`
	Cache    CacheInfo    `json:"cache"`
}

// Health statuses reported by the system-health endpoint.
const (
	HealthStatusHealthy           = "healthy"
	HealthStatusNeedsOptimization = "needs_optimization"
)

// SystemHealthStats is the detailed webhook breakdown of [SystemHealth].
type SystemHealthStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Inactive       int     `json:"inactive"`
	OldInactive    int     `json:"oldInactive"`
	RecentInactive int     `json:"recentInactive"`
	Efficiency     float64 `json:"efficiency"`
}

// SystemHealth is returned by the webhook system-health endpoint.
type SystemHealth struct {
	Efficiency float64           `json:"efficiency"`
	Stats      SystemHealthStats `json:"stats"`
	Status     string            `json:"status"`
}
