package deal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation is a denormalised copy of the unit taken when the deal is
// created. Later unit edits do not change it.
type Reservation struct {
	UnitID        uuid.UUID
	UnitNumber    string
	UnitType      string
	Area          decimal.Decimal
	Floor         int
	Price         decimal.Decimal
	DepositAmount decimal.Decimal
	HoldExpiresAt *time.Time
}

type Contact struct {
	Name          string
	Phone         string
	Email         string
	PreferredTime *time.Time
	Message       string
}

func (c Contact) normalize() Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
	return c
}

func (c Contact) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return ErrContactRequired
	}
	return nil
}

type Payment struct {
	Reference   string
	Amount      decimal.Decimal
	ConfirmedAt time.Time
}

type Note struct {
	At   time.Time
	Text string
}

// Patch is a partial update applied to the open booking deal of a unit.
// An empty Status leaves the status unchanged.
type Patch struct {
	Status  Status
	Payment *Payment
	Note    *Note
	At      time.Time
}

func AcceptPatch(payment Payment, now time.Time) Patch {
	return Patch{
		Status:  StatusAccepted,
		Payment: &payment,
		Note:    &Note{At: now, Text: "deposit confirmed: " + payment.Reference},
		At:      now,
	}
}

func CancelPatch(reason string, now time.Time) Patch {
	text := "cancelled"
	if reason = strings.TrimSpace(reason); reason != "" {
		text += ": " + reason
	}
	return Patch{
		Status: StatusCancelled,
		Note:   &Note{At: now, Text: text},
		At:     now,
	}
}

func ClosePatch(now time.Time) Patch {
	return Patch{
		Status: StatusClosed,
		Note:   &Note{At: now, Text: "unit sold"},
		At:     now,
	}
}

func NotePatch(text string, now time.Time) Patch {
	return Patch{
		Note: &Note{At: now, Text: text},
		At:   now,
	}
}
