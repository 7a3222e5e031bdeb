package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status of a tracked quotation request batch.
type Status string

const (
	StatusPendingResponse   Status = "Pending Response"
	StatusQuotesReceived    Status = "Quotes Received"
	StatusUnderReview       Status = "Under Review"
	StatusFollowUpRequired  Status = "Follow Up Required"
	StatusCompleted         Status = "Completed"
	StatusCancelled         Status = "Cancelled"
	StatusFollowUpCompleted Status = "Follow Up Completed"
)

// Statuses lists every recognized order status.
func Statuses() []Status {
	return []Status{
		StatusPendingResponse,
		StatusQuotesReceived,
		StatusUnderReview,
		StatusFollowUpRequired,
		StatusCompleted,
		StatusCancelled,
		StatusFollowUpCompleted,
	}
}

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Order records one processed tender and its outreach state.
type Order struct {
	ID                string     `json:"id"`
	ProjectName       string     `json:"project_name"`
	TenderReference   string     `json:"tender_reference,omitempty"`
	ProcessedAt       time.Time  `json:"processed_at"`
	Materials         []string   `json:"materials,omitempty"`
	SupplierCount     int        `json:"supplier_count"`
	EmailsSent        int        `json:"emails_sent"`
	SupplierBreakdown string     `json:"supplier_breakdown,omitempty"`
	Status            Status     `json:"status"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// Log tracks processed orders for the lifetime of a run. Safe for
// concurrent use.
type Log struct {
	mu     sync.RWMutex
	orders []Order
	index  map[string]int

	logger *slog.Logger
	now    func() time.Time
}

// NewLog returns an empty order log.
func NewLog() *Log {
	l := &Log{
		index:  make(map[string]int),
		logger: slog.Default(),
		now:    time.Now,
	}
	l.logger.Debug("order log initialized")
	return l
}

// Add records a new order and returns its assigned id. The id, timestamp and
// initial status are stamped here regardless of what the caller filled in.
func (l *Log) Add(o Order) string {
	o.ID = uuid.NewString()
	o.ProcessedAt = l.now()
	o.Status = StatusPendingResponse

	l.mu.Lock()
	l.orders = append(l.orders, o)
	l.index[o.ID] = len(l.orders) - 1
	l.mu.Unlock()

	l.logger.Info("order recorded", "id", o.ID, "project", o.ProjectName, "suppliers", o.SupplierCount)
	return o.ID
}

// Get returns the order with the given id.
func (l *Log) Get(id string) (Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return Order{}, false
	}
	return l.orders[i], true
}

// Orders returns a copy of every recorded order in insertion order.
func (l *Log) Orders() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Pending returns orders still waiting on suppliers.
func (l *Log) Pending() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Order
	for _, o := range l.orders {
		if o.Status == StatusPendingResponse || o.Status == StatusFollowUpRequired {
			out = append(out, o)
		}
	}
	return out
}

// ErrUnknownOrder is returned when an order id is not in the log.
var ErrUnknownOrder = errors.New("unknown order id")

// UpdateStatus moves an order to a new status. Empty notes keep the old ones.
func (l *Log) UpdateStatus(id string, status Status, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("unrecognized status %q", status)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOrder, id)
	}
	l.orders[i].Status = status
	if notes != "" {
		l.orders[i].Notes = notes
	}
	l.logger.Info("order updated", "id", id, "status", status)
	return nil
}
