package feedback

import (
	"math"
	"strings"

	"royal-stay/internal/domain/calendar"
	"royal-stay/internal/pkg/errs"
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

var ErrRatingOutOfRange = errs.ErrRatingOutOfRange

type Feedback struct {
	id       int
	rating   float64
	comments string
	guestID  int
	date     calendar.Date
}

// NewFeedback validates the rating up front; ValidateRating stays available for records
// rebuilt with ReconstructFeedback.
func NewFeedback(id int, rating float64, comments string, guestID int, date string) (*Feedback, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	d, err := calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return &Feedback{
		id:       id,
		rating:   rating,
		comments: strings.TrimSpace(comments),
		guestID:  guestID,
		date:     d,
	}, nil
}

func ReconstructFeedback(id int, rating float64, comments string, guestID int, date calendar.Date) *Feedback {
	return &Feedback{id: id, rating: rating, comments: comments, guestID: guestID, date: date}
}

func (f *Feedback) ValidateRating() error {
	return validateRating(f.rating)
}

func (f *Feedback) SetRating(rating float64) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	f.rating = rating
	return nil
}

func validateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return errs.Newf(ErrRatingOutOfRange, "got %.1f", rating)
	}
	return nil
}

func (f *Feedback) ID() int             { return f.id }
func (f *Feedback) Rating() float64     { return f.rating }
func (f *Feedback) Comments() string    { return f.comments }
func (f *Feedback) GuestID() int        { return f.guestID }
func (f *Feedback) Date() calendar.Date { return f.date }
