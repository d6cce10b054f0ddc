// Package operation
package operation

type StoreOperations struct {
	flightOperation  FlightOperationInterface
	bookingOperation BookingOperationInterface
	userOperation    UserOperationInterface
}

func NewStoreOperations(
	flightOperation FlightOperationInterface,
	bookingOperation BookingOperationInterface,
	userOperation UserOperationInterface,
) *StoreOperations {
	return &StoreOperations{
		flightOperation:  flightOperation,
		bookingOperation: bookingOperation,
		userOperation:    userOperation,
	}
}

func (store *StoreOperations) FlightOperation() FlightOperationInterface {
	return store.flightOperation
}

func (store *StoreOperations) BookingOperation() BookingOperationInterface {
	return store.bookingOperation
}

func (store *StoreOperations) UserOperation() UserOperationInterface {
	return store.userOperation
}
