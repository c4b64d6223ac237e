package deal

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
	StatusClosed    Status = "closed"
)

// OpenStatuses are the statuses of a deal that still tracks a live hold.
var OpenStatuses = []Status{StatusPending, StatusAccepted}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCancelled, StatusClosed:
		return true
	default:
		return false
	}
}

func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusAccepted
}

var nextStatuses = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusCancelled, StatusClosed},
	StatusAccepted: {StatusCancelled, StatusClosed},
}

func (s Status) CanMoveTo(next Status) bool {
	for _, candidate := range nextStatuses[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

type Kind string

const (
	KindBooking Kind = "booking"
	KindVisit   Kind = "visit"
)

func (k Kind) String() string {
	return string(k)
}

// Cancellation reasons recorded in deal notes.
const (
	ReasonExpired  = "expired"
	ReasonReleased = "hold released"
)
