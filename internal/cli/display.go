package cli

import (
	"fmt"
	"math/rand"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

const flightRowFormat = "%-8s| %-17s| %-10s--> %-11s| %-7s| %-13s| %-10s| %-6s| %-10s| %-8s\n"

// showFlights renders the catalog in a shuffled order, capped by the
// configured display limit. Shuffling is presentation only; the catalog
// itself stays in store order.
func (cli *CLI) showFlights() {
	config := cli.app.ConfigManager().Config().General
	flights := cli.app.Operations().FlightOperation().GetFlights()

	cli.banner.Println("\n==========================================================================================================================")
	cli.banner.Printf("                                  %s - AVAILABLE FLIGHTS\n", config.AirlineName)
	cli.banner.Println("==========================================================================================================================")
	fmt.Printf(flightRowFormat,
		" Flight", "Franchise", "From", "To", "Time", "Type", "Stopover", "Stay", "Status", "Delayed")
	fmt.Println("--------|------------------|--------------------------|--------|--------------|-----------|-------|-----------|-----------")

	index := make([]int, len(flights))
	for i := range index {
		index[i] = i
	}
	rand.Shuffle(len(index), func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	limit := min(len(index), config.DisplayLimit)
	for i := 0; i < limit; i++ {
		printFlightRow(flights[index[i]])
	}
}

func printFlightRow(flight *Flight) {
	flightType := TypeOf(flight)
	stopover, stay := NoStopover, NoStopover
	if flightType == FlightTypeConnecting {
		stopover, stay = flight.Stopover, flight.StayDuration
	}
	delayed := NoStopover
	if flight.Status == "Delayed" {
		delayed = flight.DelayedTime
	}
	fmt.Printf(flightRowFormat,
		flight.FlightNo, flight.Franchise, flight.Departure, flight.Destination,
		flight.DepartureTime, flightType, stopover, stay, flight.Status, delayed)
}

func printPassengers(passengers []*Passenger) {
	for i, passenger := range passengers {
		fmt.Printf("  %d. %s, Age: %d, Gender: %s, Passport: %s\n",
			i+1, passenger.Name, passenger.Age, passenger.Gender, passenger.Passport)
	}
}

func (cli *CLI) printTicket(user *User, flight *Flight, seats []string, passengers []*Passenger) {
	cli.banner.Println("\n========================= TICKET RECEIPT =========================")
	fmt.Printf("Username         : %s\n", user.Username)
	fmt.Printf("Contact          : %s\n", user.Contact)
	fmt.Printf("Passport         : %s\n", user.Passport)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Flight No        : %s\n", flight.FlightNo)
	fmt.Printf("Departure Time   : %s\n", flight.DepartureTime)
	fmt.Print("Seats            : ")
	for i, seat := range seats {
		if i+1 < len(seats) {
			fmt.Printf("%s, ", seat)
		} else {
			fmt.Println(seat)
		}
	}
	fmt.Println("------------------------------------------------------------")
	fmt.Println("Passengers:")
	printPassengers(passengers)
	cli.banner.Println("==================================================================")
}
