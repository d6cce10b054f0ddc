// Package store implements the operation interfaces on top of plain-text
// record files, one record per line, comma-separated fields.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sky-brothers/skyair/internal/interfaces/log"
	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
	"github.com/sky-brothers/skyair/internal/utils"
)

const flightRecordFields = 11

type FlightOperation struct {
	logger  log.LoggerInterface
	path    string
	flights []*Flight
	index   map[string]*Flight
}

func NewFlightOperation(logger log.LoggerInterface, path string) *FlightOperation {
	return &FlightOperation{
		logger: logger,
		path:   path,
		index:  make(map[string]*Flight),
	}
}

func (flightOperation *FlightOperation) LoadFlights() ([]*Flight, error) {
	file, err := os.Open(flightOperation.path)
	if err != nil {
		if os.IsNotExist(err) {
			flightOperation.logger.WarnF("Flight store %s does not exist, starting with an empty catalog", flightOperation.path)
			return flightOperation.flights, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		flight := parseFlightRecord(line)
		if flight == nil {
			skipped++
			continue
		}
		flightOperation.flights = append(flightOperation.flights, flight)
		flightOperation.index[flight.FlightNo] = flight
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if skipped > 0 {
		flightOperation.logger.WarnF("Skipped %d malformed flight records in %s", skipped, flightOperation.path)
	}
	return flightOperation.flights, nil
}

// parseFlightRecord returns nil for records whose capacity field is missing
// or does not begin with a digit. No other field is validated.
func parseFlightRecord(line string) *Flight {
	fields := strings.Split(line, ",")
	for len(fields) < flightRecordFields {
		fields = append(fields, "")
	}
	capField := fields[5]
	if capField == "" || capField[0] < '0' || capField[0] > '9' {
		return nil
	}
	return &Flight{
		FlightNo:      fields[0],
		Franchise:     fields[1],
		Departure:     fields[2],
		Destination:   fields[3],
		DepartureTime: fields[4],
		Capacity:      utils.LeadingInt(capField, 0),
		TypeTag:       fields[6],
		Stopover:      fields[7],
		StayDuration:  fields[8],
		Status:        fields[9],
		DelayedTime:   fields[10],
	}
}

func (flightOperation *FlightOperation) GetFlights() []*Flight {
	return flightOperation.flights
}

func (flightOperation *FlightOperation) GetFlightByNumber(flightNo string) (*Flight, error) {
	flight, ok := flightOperation.index[flightNo]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

func (flightOperation *FlightOperation) RemainingSeats(flight *Flight) int {
	return flight.Capacity - flight.Reserved
}

func (flightOperation *FlightOperation) ReserveSeat(flight *Flight) (string, error) {
	if flight.Reserved >= flight.Capacity {
		return "", ErrCapacityExhausted
	}
	seatCode := SeatCode(flight.Reserved)
	flight.Reserved++
	return seatCode, nil
}
