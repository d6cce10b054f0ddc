package cli

import (
	"errors"
	"fmt"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

func (cli *CLI) userEntry() {
	choice := cli.readInt("1. Sign Up\n2. Login\nChoice: ", -1)
	switch choice {
	case 1:
		cli.signup()
	case 2:
		cli.login()
	default:
		cli.alert.Println("Invalid choice")
	}
}

func (cli *CLI) signup() {
	fmt.Println("Signup")
	user := &User{}
	user.Username = cli.readLine("Username: ")
	user.Password = cli.readNewPassword("Password: ")
	user.Gender = cli.readLine("Gender: ")
	user.Contact = cli.readLine("Contact: ")
	user.Passport = cli.readLine("Passport: ")
	if user.Username == "" {
		cli.alert.Println("Username must not be empty.")
		return
	}
	if err := cli.app.Operations().UserOperation().AddUser(user); err != nil {
		cli.app.Logger().ErrorF("Fail to register user: %v", err)
		cli.alert.Println("Signup failed, please try again later.")
		return
	}
	cli.notice.Println("Signup successful!")
}

func (cli *CLI) login() {
	fmt.Println("Login")
	username := cli.readLine("Username: ")
	password := cli.readPassword("Password: ")
	user, err := cli.app.Operations().UserOperation().GetUserByCredentials(username, password)
	if err != nil {
		cli.alert.Println("Invalid credentials")
		return
	}
	cli.app.Logger().InfoF("User %s logged in", user.Username)
	cli.userMenu(user)
}

func (cli *CLI) userMenu(user *User) {
	for {
		choice := cli.readInt("\nUser Menu:\n1. View & Book Flights\n2. Cancel Booking\n3. View My Bookings\n0. Logout\nChoice: ", -1)
		if cli.eof {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			cli.reserve(user)
		case 2:
			cli.cancelBooking(user.Username)
		case 3:
			cli.viewUserBookings(user.Username)
		default:
			cli.alert.Println("Invalid choice")
		}
	}
}

func (cli *CLI) reserve(user *User) {
	cli.showFlights()
	operations := cli.app.Operations()
	flightNo := cli.readLine("\nEnter Flight No: ")
	flight, err := operations.FlightOperation().GetFlightByNumber(flightNo)
	if err != nil {
		cli.alert.Println("Flight not found.")
		return
	}

	count := cli.readInt("How many seats? ", 0)
	if count < 1 {
		cli.alert.Println("Invalid seat count.")
		return
	}
	if remaining := operations.FlightOperation().RemainingSeats(flight); count > remaining {
		cli.alert.Printf("Only %d seats available.\n", remaining)
		return
	}

	seats := make([]string, 0, count)
	passengers := make([]*Passenger, 0, count)
	for i := 0; i < count; i++ {
		passenger := &Passenger{}
		passenger.Name = cli.readLine(fmt.Sprintf("\nPassenger %d Name: ", i+1))
		passenger.Age = cli.readInt("Age: ", 0)
		passenger.Gender = cli.readLine("Gender: ")
		passenger.Passport = cli.readLine("Passport: ")

		seatCode, err := operations.FlightOperation().ReserveSeat(flight)
		if err != nil {
			// Unreachable after the remaining-seats check above as long
			// as this process is the only writer.
			cli.alert.Println("Flight filled up during booking.")
			return
		}
		seats = append(seats, seatCode)
		passengers = append(passengers, passenger)
	}

	booking := &Booking{
		Username:   user.Username,
		FlightNo:   flight.FlightNo,
		SeatCount:  count,
		Passengers: passengers,
	}
	if err := operations.BookingOperation().AppendBooking(booking); err != nil {
		cli.app.Logger().ErrorF("Fail to persist booking: %v", err)
		cli.alert.Println("Booking could not be saved, please try again later.")
		return
	}
	cli.printTicket(user, flight, seats, passengers)
}

func (cli *CLI) cancelBooking(username string) {
	flightNo := cli.readLine("Enter Flight No to cancel: ")
	err := cli.app.Operations().BookingOperation().CancelBooking(username, flightNo)
	switch {
	case err == nil:
		cli.notice.Println("Booking cancelled successfully.")
	case errors.Is(err, ErrBookingNotFound):
		cli.alert.Println("No booking found for that flight.")
	default:
		cli.app.Logger().ErrorF("Fail to cancel booking: %v", err)
		cli.alert.Println("Booking store unavailable, please try again later.")
	}
}

func (cli *CLI) viewUserBookings(username string) {
	bookings := cli.app.Operations().BookingOperation().GetBookingsByUsername(username)
	cli.banner.Println("\n========================= YOUR BOOKINGS =========================")
	for _, booking := range bookings {
		fmt.Printf("\nFlight No       : %s\n", booking.FlightNo)
		fmt.Printf("No. of Seats    : %d\n", booking.SeatCount)
		fmt.Println("Passengers:")
		printPassengers(booking.Passengers)
	}
	if len(bookings) == 0 {
		cli.alert.Println("No bookings found.")
	}
	cli.banner.Println("=================================================================")
}
