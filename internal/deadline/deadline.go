package deadline

import (
	"errors"
	"time"

	"github.com/mmhamza1234/procurement/internal/dates"
)

// Status classifies where a deadline stands relative to today.
type Status string

const (
	StatusOverdue     Status = "overdue"
	StatusDueToday    Status = "due_today"
	StatusDueSoon     Status = "due_soon"
	StatusApproaching Status = "approaching"
	StatusOnTrack     Status = "on_track"
)

// Urgency ranks how quickly action is needed.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// ErrZeroDate reports a zero-value time where a calendar date is required.
// Inputs here are assumed pre-validated dates; a zero value is caller
// misuse and fails fast instead of miscomputing quietly.
var ErrZeroDate = errors.New("deadline: date must not be zero")

// DefaultBufferDays separates the supplier deadline from the client one.
const DefaultBufferDays = 2

// Assessment describes one deadline's standing as of today.
type Assessment struct {
	Status        Status  `json:"status"`
	Urgency       Urgency `json:"urgency"`
	DaysRemaining int     `json:"days_remaining"`
	BusinessDay   bool    `json:"is_business_day"`
}

// Decision is the full supplier-deadline recommendation for one client
// deadline. The embedded Assessment reads the supplier deadline, so a
// forward clamp surfaces as due_today/critical rather than disappearing.
type Decision struct {
	ClientDeadline   time.Time `json:"client_deadline"`
	SupplierDeadline time.Time `json:"supplier_deadline"`
	Assessment
}

// Calculator derives supplier-facing deadlines from client-facing ones.
// Now is injectable so tests can pin "today"; the zero value means
// time.Now. Calculators are stateless beyond their settings and safe for
// concurrent use.
type Calculator struct {
	BufferDays int
	Now        func() time.Time
}

// NewCalculator returns a Calculator with the given buffer. Negative
// buffers fall back to the default.
func NewCalculator(bufferDays int) *Calculator {
	if bufferDays < 0 {
		bufferDays = DefaultBufferDays
	}
	return &Calculator{BufferDays: bufferDays, Now: time.Now}
}

func (c *Calculator) today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return dates.DateOnly(now())
}

// SupplierDeadline subtracts the buffer from the client deadline, clamping
// forward to today so the result never lands in the past. The silently
// shortened buffer is surfaced by Assess, not here.
func (c *Calculator) SupplierDeadline(client time.Time) (time.Time, error) {
	if client.IsZero() {
		return time.Time{}, ErrZeroDate
	}
	supplier := dates.DateOnly(client).AddDate(0, 0, -c.BufferDays)
	if today := c.today(); supplier.Before(today) {
		supplier = today
	}
	return supplier, nil
}

// OptimalSupplierDeadline scales the buffer by a complexity factor (never
// below one day), snaps a weekend landing back to the prior business day,
// and if the snap falls before today, advances to the next business day
// after today instead.
func (c *Calculator) OptimalSupplierDeadline(client time.Time, complexity float64) (time.Time, error) {
	if client.IsZero() {
		return time.Time{}, ErrZeroDate
	}
	buffer := int(float64(c.BufferDays) * complexity)
	if buffer < 1 {
		buffer = 1
	}
	supplier := dates.DateOnly(client).AddDate(0, 0, -buffer)
	if !IsBusinessDay(supplier) {
		supplier = PreviousBusinessDay(supplier)
	}
	if today := c.today(); supplier.Before(today) {
		supplier = NextBusinessDay(today)
	}
	return supplier, nil
}

// Assess classifies a deadline's standing as of today. It is a pure
// function of (deadline, today).
func (c *Calculator) Assess(d time.Time) (Assessment, error) {
	if d.IsZero() {
		return Assessment{}, ErrZeroDate
	}
	d = dates.DateOnly(d)
	days := dates.DaysBetween(c.today(), d)
	a := Assessment{DaysRemaining: days, BusinessDay: IsBusinessDay(d)}
	switch {
	case days < 0:
		a.Status, a.Urgency = StatusOverdue, UrgencyCritical
	case days == 0:
		a.Status, a.Urgency = StatusDueToday, UrgencyCritical
	case days == 1:
		a.Status, a.Urgency = StatusDueSoon, UrgencyHigh
	case days <= 3:
		a.Status, a.Urgency = StatusApproaching, UrgencyMedium
	default:
		a.Status, a.Urgency = StatusOnTrack, UrgencyLow
	}
	return a, nil
}

// Evaluate composes SupplierDeadline and Assess into one Decision.
func (c *Calculator) Evaluate(client time.Time) (Decision, error) {
	supplier, err := c.SupplierDeadline(client)
	if err != nil {
		return Decision{}, err
	}
	assessment, err := c.Assess(supplier)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		ClientDeadline:   dates.DateOnly(client),
		SupplierDeadline: supplier,
		Assessment:       assessment,
	}, nil
}
