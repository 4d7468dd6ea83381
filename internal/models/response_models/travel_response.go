package response_models

// DestinationRecommendation is one suggested destination from the
// recommendation engine, enriched with advisory content.
type DestinationRecommendation struct {
	City               string   `json:"city"`
	Country            string   `json:"country"`
	Region             string   `json:"region,omitempty"`
	Description        string   `json:"description,omitempty"`
	KeyAttractions     []string `json:"key_attractions,omitempty"`
	EstimatedDailyCost float64  `json:"estimated_daily_cost,omitempty"`
	BestTimeToVisit    string   `json:"best_time_to_visit,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
}

type NotificationResponse struct {
	Sent      bool   `json:"sent"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
}
