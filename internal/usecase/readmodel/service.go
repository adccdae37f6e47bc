package readmodel

type ServiceRequestRM struct {
	ID          int    `json:"id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	GuestID     int    `json:"guest_id"`
	RequestTime string `json:"request_time"`
	IsPremium   bool   `json:"is_premium"`
}

type FeedbackRM struct {
	ID       int     `json:"id"`
	Rating   float64 `json:"rating"`
	Comments string  `json:"comments"`
	GuestID  int     `json:"guest_id"`
	Date     string  `json:"date"`
}
