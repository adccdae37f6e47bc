package readmodel

type GuestRM struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	ContactInfo   string   `json:"contact_info"`
	LoyaltyStatus string   `json:"loyalty_status"`
	Kind          string   `json:"kind"`
	VIPBenefits   []string `json:"vip_benefits,omitempty"`
}

type RoomRM struct {
	Number        int      `json:"number"`
	Kind          string   `json:"kind"`
	PricePerNight string   `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	IsAvailable   bool     `json:"is_available"`
	IsDeluxe      bool     `json:"is_deluxe"`
}

type LoyaltyRM struct {
	GuestID int      `json:"guest_id"`
	Balance int      `json:"balance"`
	Tier    string   `json:"tier"`
	Rewards []string `json:"rewards"`
	Expiry  string   `json:"expiry"`
}
