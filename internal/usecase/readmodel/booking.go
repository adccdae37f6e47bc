package readmodel

type BookingRM struct {
	ID          int    `json:"id"`
	GuestID     int    `json:"guest_id"`
	RoomNumber  int    `json:"room_number"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Duration    int    `json:"duration"`
	IsCancelled bool   `json:"is_cancelled"`
	InvoiceID   *int   `json:"invoice_id,omitempty"`
}

type InvoiceRM struct {
	ID            int    `json:"id"`
	BookingID     int    `json:"booking_id"`
	TotalAmount   string `json:"total_amount"`
	Discount      string `json:"discount"`
	NetTotal      string `json:"net_total"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}
