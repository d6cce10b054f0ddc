package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

func TestLoadFlightsSkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "flights.csv",
		"SB101,Sky Brothers,Delhi,Mumbai,09:30,120,Domestic,-,-,On Time,-\n"+
			"BAD01,Sky Brothers,Delhi,Pune,10:00,abc,Domestic,-,-,On Time,-\n"+
			"BAD02,Sky Brothers,Delhi,Pune,10:00,,Domestic,-,-,On Time,-\n"+
			"SB202,Sky Brothers,Delhi,Dubai,14:00,90,International,DXB,2h,Delayed,16:00\n")

	flightOperation := NewFlightOperation(nopLogger{}, path)
	flights, err := flightOperation.LoadFlights()
	require.NoError(t, err)
	require.Len(t, flights, 2, "malformed rows must be skipped without aborting the load")
	require.Equal(t, "SB101", flights[0].FlightNo)
	require.Equal(t, "SB202", flights[1].FlightNo)
	require.Equal(t, 90, flights[1].Capacity)
}

func TestLoadFlightsToleratesTrailingJunkInCapacity(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "flights.csv",
		"SB101,Sky Brothers,Delhi,Mumbai,09:30,120seats,Domestic,-,-,On Time,-\n")

	flightOperation := NewFlightOperation(nopLogger{}, path)
	flights, err := flightOperation.LoadFlights()
	require.NoError(t, err)
	require.Len(t, flights, 1)
	require.Equal(t, 120, flights[0].Capacity)
}

func TestGetFlightByNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "flights.csv",
		"SB101,Sky Brothers,Delhi,Mumbai,09:30,120,Domestic,-,-,On Time,-\n")

	flightOperation := NewFlightOperation(nopLogger{}, path)
	_, err := flightOperation.LoadFlights()
	require.NoError(t, err)

	flight, err := flightOperation.GetFlightByNumber("SB101")
	require.NoError(t, err)
	require.Equal(t, "Mumbai", flight.Destination)

	_, err = flightOperation.GetFlightByNumber("SB999")
	require.ErrorIs(t, err, ErrFlightNotFound)
}

func TestReserveSeatSequence(t *testing.T) {
	flightOperation := NewFlightOperation(nopLogger{}, "")
	flight := &Flight{FlightNo: "SB101", Capacity: 7}

	expected := []string{"A1", "A2", "A3", "A4", "A5", "A6", "B1"}
	for i, want := range expected {
		require.Equal(t, i, flight.Reserved)
		seat, err := flightOperation.ReserveSeat(flight)
		require.NoError(t, err)
		require.Equal(t, want, seat)
	}

	_, err := flightOperation.ReserveSeat(flight)
	require.ErrorIs(t, err, ErrCapacityExhausted)
	require.Equal(t, 7, flight.Reserved, "a failed reservation must not change state")
	require.Equal(t, 0, flightOperation.RemainingSeats(flight))
}

func TestReserveSeatCapacityOne(t *testing.T) {
	flightOperation := NewFlightOperation(nopLogger{}, "")
	flight := &Flight{FlightNo: "F1", Capacity: 1}

	seat, err := flightOperation.ReserveSeat(flight)
	require.NoError(t, err)
	require.Equal(t, "A1", seat)

	_, err = flightOperation.ReserveSeat(flight)
	require.ErrorIs(t, err, ErrCapacityExhausted)
}
