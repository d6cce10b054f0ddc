package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sky-brothers/skyair/internal/interfaces/global"
	"github.com/sky-brothers/skyair/internal/interfaces/log"
	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
	"github.com/sky-brothers/skyair/internal/utils"
)

const bookingRecordFields = 4

// BookingOperation is the durable booking ledger: append-only writes plus
// rewrite-based cancellation. The process is assumed to be the only writer
// of the store file; the mutex only serializes in-process callers.
type BookingOperation struct {
	logger log.LoggerInterface
	path   string
	mu     sync.Mutex
}

func NewBookingOperation(logger log.LoggerInterface, path string) *BookingOperation {
	return &BookingOperation{
		logger: logger,
		path:   path,
	}
}

// readAll returns every record in store order. The ledger keeps no in-memory
// copy: every read goes back to the file, so restarts and rewrites agree.
func (bookingOperation *BookingOperation) readAll() ([]*Booking, error) {
	file, err := os.Open(bookingOperation.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	bookings := make([]*Booking, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		bookings = append(bookings, decodeBookingRecord(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func decodeBookingRecord(line string) *Booking {
	// The passenger list field may contain commas in names, so only the
	// first three separators split the record.
	fields := strings.SplitN(line, ",", bookingRecordFields)
	for len(fields) < bookingRecordFields {
		fields = append(fields, "")
	}
	passengers := DecodePassengers(fields[3])
	return &Booking{
		Username:   fields[0],
		FlightNo:   fields[1],
		SeatCount:  utils.StrToInt(fields[2], len(passengers)),
		Passengers: passengers,
	}
}

func encodeBookingRecord(booking *Booking) string {
	return fmt.Sprintf("%s,%s,%d,%s",
		booking.Username, booking.FlightNo, booking.SeatCount, EncodePassengers(booking.Passengers))
}

func (bookingOperation *BookingOperation) AppendBooking(booking *Booking) error {
	bookingOperation.mu.Lock()
	defer bookingOperation.mu.Unlock()

	file, err := os.OpenFile(bookingOperation.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if _, err := file.WriteString(encodeBookingRecord(booking) + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	bookingOperation.logger.DebugF("Appended booking for %s on flight %s (%d seats)",
		booking.Username, booking.FlightNo, booking.SeatCount)
	return nil
}

func (bookingOperation *BookingOperation) CancelBooking(username, flightNo string) error {
	bookingOperation.mu.Lock()
	defer bookingOperation.mu.Unlock()

	bookings, err := bookingOperation.readAll()
	if err != nil {
		if os.IsNotExist(err) {
			return ErrBookingNotFound
		}
		// Never rewrite a store that could not be read back: a failed
		// read followed by a rewrite would truncate the ledger.
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	matched := false
	survivors := utils.Filter(bookings, func(booking *Booking) bool {
		if booking.Username == username && booking.FlightNo == flightNo {
			matched = true
			return false
		}
		return true
	})

	if err := bookingOperation.writeSnapshot(survivors); err != nil {
		return err
	}
	if !matched {
		return ErrBookingNotFound
	}
	bookingOperation.logger.InfoF("Cancelled %d booking(s) for %s on flight %s",
		len(bookings)-len(survivors), username, flightNo)
	return nil
}

// writeSnapshot replaces the store with the given records through a temp
// file, fsync and atomic rename, so a crash mid-rewrite leaves either the
// old snapshot or the new one intact, never a torn file.
func (bookingOperation *BookingOperation) writeSnapshot(bookings []*Booking) error {
	dir := filepath.Dir(bookingOperation.path)
	tmp, err := os.CreateTemp(dir, "bookings-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	discard := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	writer := bufio.NewWriter(tmp)
	for _, booking := range bookings {
		if _, err := writer.WriteString(encodeBookingRecord(booking) + "\n"); err != nil {
			return discard(err)
		}
	}
	if err := writer.Flush(); err != nil {
		return discard(err)
	}
	if err := tmp.Sync(); err != nil {
		return discard(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), bookingOperation.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (bookingOperation *BookingOperation) GetBookingsByUsername(username string) []*Booking {
	return utils.Filter(bookingOperation.GetAllBookings(), func(booking *Booking) bool {
		return booking.Username == username
	})
}

func (bookingOperation *BookingOperation) GetAllBookings() []*Booking {
	bookingOperation.mu.Lock()
	defer bookingOperation.mu.Unlock()

	bookings, err := bookingOperation.readAll()
	if err != nil {
		if !os.IsNotExist(err) {
			bookingOperation.logger.WarnF("Booking store %s unreadable, treating as empty: %v", bookingOperation.path, err)
		}
		return []*Booking{}
	}
	return bookings
}
