package model

import "github.com/shopspring/decimal"

type Booking struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	MobileNo        string          `json:"mobileNo"`
	Country         string          `json:"country"`
	TravelType      string          `json:"travelType"`
	TravelStartDate string          `json:"travelStartDate"` // YYYY-MM-DD
	TravelEndDate   string          `json:"travelEndDate"`   // YYYY-MM-DD
	AdultNum        int             `json:"adultNum"`
	ChildNum        int             `json:"childNum"`
	NumTravelers    int             `json:"numTravelers"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	SpecialRequest  string          `json:"specialRequest,omitempty"`
}
