package domain

import "time"

// SessionStatus represents the lifecycle state of a bar session.
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionClosed SessionStatus = "closed"
)

// BartenderStatus is the per-assignment state of a bartender on the roster.
type BartenderStatus string

const (
	BartenderActive   BartenderStatus = "active"
	BartenderPending  BartenderStatus = "pending"
	BartenderApproved BartenderStatus = "approved"
)

// Bartender is one entry on a session's bartender roster. Member may have
// been stored as a bare id or depth-populated; Ref normalizes both.
type Bartender struct {
	Member             Ref             `json:"member" bson:"member"`
	EstimatedStartTime *time.Time      `json:"estimated_start_time,omitempty" bson:"estimatedStartTime,omitempty"`
	EstimatedEndTime   *time.Time      `json:"estimated_end_time,omitempty" bson:"estimatedEndTime,omitempty"`
	Status             BartenderStatus `json:"status" bson:"bartenderStatus"`
}

// SessionStatistics holds the best-effort running aggregates of a session.
// MostPopularProduct keeps the first value ever written for the session; it
// is not recomputed against true order history.
// TODO: recompute mostPopularProduct from order history once the reporting
// page needs an accurate value.
type SessionStatistics struct {
	TotalProductsSold  int    `json:"total_products_sold" bson:"totalProductsSold"`
	MostPopularProduct string `json:"most_popular_product,omitempty" bson:"mostPopularProduct,omitempty"`
}

// Session is a bartender shift. At most one session is active at a time;
// the sessions collection enforces this with a partial unique index.
type Session struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	Name         string            `json:"name,omitempty" bson:"sessionName,omitempty"`
	Status       SessionStatus     `json:"status" bson:"status"`
	CreatedBy    Ref               `json:"created_by" bson:"createdBy"`
	StartTime    *time.Time        `json:"start_time,omitempty" bson:"startTime,omitempty"`
	EndTime      *time.Time        `json:"end_time,omitempty" bson:"endTime,omitempty"`
	Bartenders   []Bartender       `json:"bartenders" bson:"bartenders"`
	TotalRevenue float64           `json:"total_revenue" bson:"totalRevenue"`
	Statistics   SessionStatistics `json:"statistics" bson:"statistics"`
	Notes        string            `json:"notes,omitempty" bson:"notes,omitempty"`
}

// HasBartender reports whether the member with the given id is on the
// session's bartender roster.
func (s *Session) HasBartender(memberID string) bool {
	for _, b := range s.Bartenders {
		if b.Member.ID == memberID {
			return true
		}
	}
	return false
}
