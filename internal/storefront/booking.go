package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/pricing"
	"go-travel-agency/pkg/validator"
)

var (
	ErrEndBeforeStart    = errors.New("End date must be after start date")
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
	ErrUnknownTravelType = errors.New("travel type not found")
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	MobileNo        string `json:"mobileNo" validate:"required,mobile_digits"`
	Country         string `json:"country" validate:"required"`
	TravelType      string `json:"travelType" validate:"required"`
	TravelStartDate string `json:"travelStartDate" validate:"required"`
	TravelEndDate   string `json:"travelEndDate" validate:"required"`
	AdultNum        int    `json:"adultNum" validate:"min=1"`
	ChildNum        int    `json:"childNum" validate:"min=0"`
	SpecialRequest  string `json:"specialRequest"`

	// Computed before submit, never supplied by the caller.
	NumTravelers int    `json:"numTravelers"`
	TotalAmount  string `json:"totalAmount"`
}

// BookingForm drives the public booking dialog. Trips are matched by id
// against the loaded catalog so the amount prices the selected trip.
type BookingForm struct {
	client     *api.Client
	notifier   notify.Notifier
	trips      []model.Trip
	submitting bool
}

func NewBookingForm(client *api.Client, notifier notify.Notifier, trips []model.Trip) *BookingForm {
	return &BookingForm{client: client, notifier: notifier, trips: trips}
}

// Submit validates the request, checks the date ordering, computes the
// traveler count and amount, and posts the booking.
func (f *BookingForm) Submit(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	if f.submitting {
		return nil, ErrSubmitInFlight
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	start, err := time.Parse(dateLayout, req.TravelStartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travelStartDate, use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.TravelEndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travelEndDate, use YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	trip, err := f.findTrip(req.TravelType)
	if err != nil {
		return nil, err
	}

	req.NumTravelers = pricing.TotalTravelers(req.AdultNum, req.ChildNum)
	price := pricing.FinalPrice(trip.OriginalPrice, trip.DiscountPercent)
	req.TotalAmount = pricing.Display(pricing.BookingAmount(price, req.NumTravelers))

	var saved model.Booking
	if err := f.client.Post(ctx, api.Bookings(), &req, &saved); err != nil {
		f.notifier.Error(api.Message(err, "Failed to submit booking. Please try again."))
		return nil, err
	}
	f.notifier.Success("Booking submitted successfully!")
	return &saved, nil
}

func (f *BookingForm) findTrip(id string) (*model.Trip, error) {
	for i := range f.trips {
		if f.trips[i].ID == id {
			return &f.trips[i], nil
		}
	}
	return nil, ErrUnknownTravelType
}
