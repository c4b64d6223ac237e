package unit

type Status string

const (
	StatusAvailable     Status = "available"
	StatusBooked        Status = "booked"
	StatusReserved      Status = "reserved"
	StatusUnderContract Status = "under_contract"
	StatusSold          Status = "sold"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusAvailable,
	StatusBooked,
	StatusReserved,
	StatusUnderContract,
	StatusSold,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusReserved, StatusUnderContract, StatusSold:
		return true
	default:
		return false
	}
}

// CarriesHold reports whether a unit in this status must have a current hold.
func (s Status) CarriesHold() bool {
	return s == StatusBooked || s == StatusReserved
}

func (s Status) IsTerminal() bool {
	return s == StatusSold
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
