// Package operation
package operation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sky-brothers/skyair/internal/utils"
)

var (
	ErrBookingNotFound    = errors.New("booking does not exist")
	ErrStorageUnavailable = errors.New("record store unavailable")
)

const (
	passengerSeparator      = ";"
	passengerFieldSeparator = "|"
)

type Passenger struct {
	Name     string
	Age      int
	Gender   string
	Passport string
}

// Booking is a ledger record. It has no identity beyond the pair
// (Username, FlightNo): two bookings by the same user on the same flight are
// indistinguishable for cancellation purposes.
type Booking struct {
	Username   string
	FlightNo   string
	SeatCount  int
	Passengers []*Passenger
}

// EncodePassengers renders the passenger list field:
// name|age|gender|passport tuples joined by semicolons.
func EncodePassengers(passengers []*Passenger) string {
	parts := make([]string, 0, len(passengers))
	for _, passenger := range passengers {
		parts = append(parts, fmt.Sprintf("%s|%d|%s|%s",
			passenger.Name, passenger.Age, passenger.Gender, passenger.Passport))
	}
	return strings.Join(parts, passengerSeparator)
}

// DecodePassengers parses the passenger list field. Short tuples are padded
// with empty fields rather than rejected.
func DecodePassengers(field string) []*Passenger {
	if field == "" {
		return nil
	}
	entries := strings.Split(field, passengerSeparator)
	passengers := make([]*Passenger, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		fields := strings.SplitN(entry, passengerFieldSeparator, 4)
		for len(fields) < 4 {
			fields = append(fields, "")
		}
		passengers = append(passengers, &Passenger{
			Name:     fields[0],
			Age:      utils.StrToInt(fields[1], 0),
			Gender:   fields[2],
			Passport: fields[3],
		})
	}
	return passengers
}

// BookingOperationInterface 订票记录操作接口定义
type BookingOperationInterface interface {
	// AppendBooking writes one record to the end of the store. No
	// uniqueness check is performed.
	AppendBooking(booking *Booking) (err error)
	// CancelBooking drops every record matching (username, flightNo) and
	// rewrites the survivors, in store order, through an atomic replace.
	// Returns ErrBookingNotFound when nothing matched.
	CancelBooking(username, flightNo string) (err error)
	// GetBookingsByUsername returns the user's records in store order. An
	// unreadable store yields an empty result, not an error.
	GetBookingsByUsername(username string) (bookings []*Booking)
	// GetAllBookings returns every record in store order. An unreadable
	// store yields an empty result, not an error.
	GetAllBookings() (bookings []*Booking)
}
