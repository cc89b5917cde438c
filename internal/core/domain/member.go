package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Member models a fraternity member with a running tab. Bartender is not a
// role: it is assigned per session via the session's bartender roster.
type Member struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	FirstName    string    `json:"first_name" bson:"firstName"`
	LastName     string    `json:"last_name" bson:"lastName"`
	Couleurname  string    `json:"couleurname" bson:"couleurname"`
	Role         string    `json:"role" bson:"role"`
	Rank         string    `json:"rank,omitempty" bson:"rank,omitempty"`
	TabBalance   float64   `json:"tab_balance" bson:"tabBalance"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}

// IsAdmin reports whether the member holds the admin role.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
