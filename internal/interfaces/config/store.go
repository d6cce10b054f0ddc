// Package config
package config

import (
	"errors"

	"github.com/sky-brothers/skyair/internal/interfaces/log"
)

type StoreConfig struct {
	FlightFile  string `json:"flight_file"`
	UserFile    string `json:"user_file"`
	BookingFile string `json:"booking_file"`
}

func defaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		FlightFile:  "flights.csv",
		UserFile:    "users.csv",
		BookingFile: "bookings.csv",
	}
}

func (config *StoreConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.FlightFile == "" {
		return ValidFail(errors.New("flight_file must not be empty"))
	}
	if config.UserFile == "" {
		return ValidFail(errors.New("user_file must not be empty"))
	}
	if config.BookingFile == "" {
		return ValidFail(errors.New("booking_file must not be empty"))
	}
	return ValidPass()
}
