package service

import (
	"royal-stay/internal/domain/calendar"
)

const (
	StatusPending   = "Pending"
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
)

// PremiumDetails only exists on premium requests.
type PremiumDetails struct {
	Level            string
	SpecializedStaff bool
	ExclusiveAccess  bool
}

type Request struct {
	id          int
	serviceType string
	status      string
	guestID     int
	requestTime calendar.Timestamp
	premium     *PremiumDetails
}

func NewRequest(id int, serviceType, status string, guestID int, requestTime string) (*Request, error) {
	ts, err := calendar.ParseTimestamp(requestTime)
	if err != nil {
		return nil, err
	}
	return &Request{
		id:          id,
		serviceType: serviceType,
		status:      status,
		guestID:     guestID,
		requestTime: ts,
	}, nil
}

func NewPremiumRequest(id int, serviceType, status string, guestID int, requestTime string, details PremiumDetails) (*Request, error) {
	r, err := NewRequest(id, serviceType, status, guestID, requestTime)
	if err != nil {
		return nil, err
	}
	r.premium = &details
	return r, nil
}

func (r *Request) SetRequestTime(requestTime string) error {
	ts, err := calendar.ParseTimestamp(requestTime)
	if err != nil {
		return err
	}
	r.requestTime = ts
	return nil
}

func (r *Request) MarkAsCompleted() {
	r.status = StatusCompleted
}

func (r *Request) Premium() (PremiumDetails, bool) {
	if r.premium == nil {
		return PremiumDetails{}, false
	}
	return *r.premium, true
}

func (r *Request) IsPremium() bool { return r.premium != nil }

func (r *Request) ID() int                         { return r.id }
func (r *Request) ServiceType() string             { return r.serviceType }
func (r *Request) Status() string                  { return r.status }
func (r *Request) GuestID() int                    { return r.guestID }
func (r *Request) RequestTime() calendar.Timestamp { return r.requestTime }
