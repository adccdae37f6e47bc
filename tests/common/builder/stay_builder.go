//go:build unit

package builder

import (
	"royal-stay/internal/domain/feedback"
	"royal-stay/internal/domain/loyalty"
	"royal-stay/internal/domain/service"
)

type FeedbackBuilder struct {
	ID       int
	Rating   float64
	Comments string
	GuestID  int
	Date     string
}

func NewFeedbackBuilder() *FeedbackBuilder {
	return &FeedbackBuilder{
		ID:       1,
		Rating:   4.5,
		Comments: "Great stay!",
		GuestID:  1,
		Date:     "2025-06-03",
	}
}

func (b *FeedbackBuilder) With(mutate func(*FeedbackBuilder)) *FeedbackBuilder {
	mutate(b)
	return b
}

func (b *FeedbackBuilder) BuildDomain() (*feedback.Feedback, error) {
	return feedback.NewFeedback(b.ID, b.Rating, b.Comments, b.GuestID, b.Date)
}

func (b *FeedbackBuilder) WithRating(rating float64) *FeedbackBuilder {
	b.Rating = rating
	return b
}

func (b *FeedbackBuilder) WithComments(comments string) *FeedbackBuilder {
	b.Comments = comments
	return b
}

func (b *FeedbackBuilder) WithDate(date string) *FeedbackBuilder {
	b.Date = date
	return b
}

type ServiceRequestBuilder struct {
	ID          int
	ServiceType string
	Status      string
	GuestID     int
	RequestTime string
	Premium     *service.PremiumDetails
}

func NewServiceRequestBuilder() *ServiceRequestBuilder {
	return &ServiceRequestBuilder{
		ID:          1,
		ServiceType: "Room Service",
		Status:      service.StatusPending,
		GuestID:     2,
		RequestTime: "2025-06-01 14:30:00",
	}
}

func (b *ServiceRequestBuilder) With(mutate func(*ServiceRequestBuilder)) *ServiceRequestBuilder {
	mutate(b)
	return b
}

func (b *ServiceRequestBuilder) BuildDomain() (*service.Request, error) {
	if b.Premium != nil {
		return service.NewPremiumRequest(b.ID, b.ServiceType, b.Status, b.GuestID, b.RequestTime, *b.Premium)
	}
	return service.NewRequest(b.ID, b.ServiceType, b.Status, b.GuestID, b.RequestTime)
}

func (b *ServiceRequestBuilder) WithRequestTime(requestTime string) *ServiceRequestBuilder {
	b.RequestTime = requestTime
	return b
}

func (b *ServiceRequestBuilder) AsPremium() *ServiceRequestBuilder {
	b.ServiceType = "Spa Treatment"
	b.Status = service.StatusScheduled
	b.Premium = &service.PremiumDetails{Level: "Platinum", SpecializedStaff: true, ExclusiveAccess: true}
	return b
}

type LoyaltyBuilder struct {
	GuestID     int
	Points      int
	BaseRewards []string
	Expiry      string
}

func NewLoyaltyBuilder() *LoyaltyBuilder {
	return &LoyaltyBuilder{
		GuestID: 1,
		Points:  700,
		Expiry:  "2026-12-31",
	}
}

func (b *LoyaltyBuilder) With(mutate func(*LoyaltyBuilder)) *LoyaltyBuilder {
	mutate(b)
	return b
}

func (b *LoyaltyBuilder) BuildDomain() (*loyalty.Program, error) {
	return loyalty.NewProgram(b.GuestID, b.Points, b.BaseRewards, b.Expiry)
}

func (b *LoyaltyBuilder) WithPoints(points int) *LoyaltyBuilder {
	b.Points = points
	return b
}

func (b *LoyaltyBuilder) WithExpiry(expiry string) *LoyaltyBuilder {
	b.Expiry = expiry
	return b
}
