package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

func newTestLedger(t *testing.T) *BookingOperation {
	t.Helper()
	return NewBookingOperation(nopLogger{}, filepath.Join(t.TempDir(), "bookings.csv"))
}

func aliceBooking() *Booking {
	return &Booking{
		Username:  "alice",
		FlightNo:  "F1",
		SeatCount: 1,
		Passengers: []*Passenger{
			{Name: "Bob", Age: 30, Gender: "M", Passport: "P123"},
		},
	}
}

func TestAppendListCancelRoundTrip(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.AppendBooking(aliceBooking()))

	bookings := ledger.GetBookingsByUsername("alice")
	require.Len(t, bookings, 1)
	assert.Equal(t, "F1", bookings[0].FlightNo)
	assert.Equal(t, 1, bookings[0].SeatCount)
	require.Len(t, bookings[0].Passengers, 1)
	assert.Equal(t, "Bob", bookings[0].Passengers[0].Name)
	assert.Equal(t, 30, bookings[0].Passengers[0].Age)
	assert.Equal(t, "P123", bookings[0].Passengers[0].Passport)

	require.NoError(t, ledger.CancelBooking("alice", "F1"))
	assert.Empty(t, ledger.GetBookingsByUsername("alice"))

	// Second cancellation for the same pair finds nothing.
	require.ErrorIs(t, ledger.CancelBooking("alice", "F1"), ErrBookingNotFound)
}

func TestCancelRemovesEveryMatchingRecord(t *testing.T) {
	ledger := newTestLedger(t)

	// Two bookings by the same user on the same flight are
	// indistinguishable, so one cancel call removes both.
	require.NoError(t, ledger.AppendBooking(aliceBooking()))
	require.NoError(t, ledger.AppendBooking(aliceBooking()))
	require.NoError(t, ledger.AppendBooking(&Booking{
		Username: "carol", FlightNo: "F1", SeatCount: 1,
		Passengers: []*Passenger{{Name: "Carol", Age: 41, Gender: "F", Passport: "P900"}},
	}))

	require.NoError(t, ledger.CancelBooking("alice", "F1"))

	remaining := ledger.GetAllBookings()
	require.Len(t, remaining, 1)
	assert.Equal(t, "carol", remaining[0].Username)
}

func TestCancelPreservesStoreOrder(t *testing.T) {
	ledger := newTestLedger(t)

	users := []string{"u1", "u2", "u3", "u4"}
	for _, username := range users {
		booking := aliceBooking()
		booking.Username = username
		require.NoError(t, ledger.AppendBooking(booking))
	}

	require.NoError(t, ledger.CancelBooking("u2", "F1"))

	remaining := ledger.GetAllBookings()
	require.Len(t, remaining, 3)
	assert.Equal(t, "u1", remaining[0].Username)
	assert.Equal(t, "u3", remaining[1].Username)
	assert.Equal(t, "u4", remaining[2].Username)
}

func TestCancelOnMissingStore(t *testing.T) {
	ledger := newTestLedger(t)
	require.ErrorIs(t, ledger.CancelBooking("alice", "F1"), ErrBookingNotFound)
}

func TestCancelLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	ledger := NewBookingOperation(nopLogger{}, filepath.Join(dir, "bookings.csv"))

	require.NoError(t, ledger.AppendBooking(aliceBooking()))
	require.NoError(t, ledger.CancelBooking("alice", "F1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bookings.csv", entries[0].Name())
}

func TestListOnMissingStoreIsEmpty(t *testing.T) {
	ledger := newTestLedger(t)
	assert.Empty(t, ledger.GetAllBookings())
	assert.Empty(t, ledger.GetBookingsByUsername("alice"))
}

func TestPassengerNamesMayContainCommas(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.AppendBooking(&Booking{
		Username: "alice", FlightNo: "F1", SeatCount: 1,
		Passengers: []*Passenger{{Name: "de Vries, Jan", Age: 52, Gender: "M", Passport: "P321"}},
	}))

	bookings := ledger.GetBookingsByUsername("alice")
	require.Len(t, bookings, 1)
	require.Len(t, bookings[0].Passengers, 1)
	assert.Equal(t, "de Vries, Jan", bookings[0].Passengers[0].Name)
}

func TestMultiPassengerRecordRoundTrip(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.AppendBooking(&Booking{
		Username: "alice", FlightNo: "F1", SeatCount: 2,
		Passengers: []*Passenger{
			{Name: "Bob", Age: 30, Gender: "M", Passport: "P123"},
			{Name: "Amy", Age: 28, Gender: "F", Passport: "P124"},
		},
	}))

	bookings := ledger.GetAllBookings()
	require.Len(t, bookings, 1)
	require.Len(t, bookings[0].Passengers, 2)
	assert.Equal(t, "Amy", bookings[0].Passengers[1].Name)
	assert.Equal(t, 28, bookings[0].Passengers[1].Age)
}
