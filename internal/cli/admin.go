package cli

import (
	"errors"
	"fmt"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

// adminLogin checks the configured admin credentials. This is a fixed
// comparison, separate from the user directory.
func (cli *CLI) adminLogin() {
	config := cli.app.ConfigManager().Config().General
	username := cli.readLine("Admin Username: ")
	password := cli.readPassword("Password: ")
	if username != config.AdminUsername || password != config.AdminPassword {
		cli.alert.Println("Invalid admin login.")
		return
	}
	cli.app.Logger().Info("Admin logged in")
	cli.adminMenu()
}

func (cli *CLI) adminMenu() {
	for {
		choice := cli.readInt("\nAdmin Menu:\n1. View Flights\n2. View All Bookings\n3. Cancel Any Booking\n0. Logout\nChoice: ", -1)
		if cli.eof {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			cli.showFlights()
		case 2:
			cli.viewAllBookings()
		case 3:
			cli.cancelAnyBooking()
		default:
			cli.alert.Println("Invalid choice.")
		}
	}
}

func (cli *CLI) viewAllBookings() {
	bookings := cli.app.Operations().BookingOperation().GetAllBookings()
	cli.banner.Println("\n========================= ALL BOOKINGS =========================")
	for _, booking := range bookings {
		fmt.Printf("\nUsername: %s, Flight: %s, Seats: %d\n",
			booking.Username, booking.FlightNo, booking.SeatCount)
	}
	cli.banner.Println("=================================================================")
}

func (cli *CLI) cancelAnyBooking() {
	username := cli.readLine("Enter Username: ")
	flightNo := cli.readLine("Enter Flight No to cancel: ")
	err := cli.app.Operations().BookingOperation().CancelBooking(username, flightNo)
	switch {
	case err == nil:
		cli.notice.Println("Booking cancelled.")
	case errors.Is(err, ErrBookingNotFound):
		cli.alert.Println("No such booking found.")
	default:
		cli.app.Logger().ErrorF("Fail to cancel booking: %v", err)
		cli.alert.Println("Booking store unavailable, please try again later.")
	}
}
