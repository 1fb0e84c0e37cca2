package entities

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is the account record shared between the fleet API and the
// booking core. FavoriteCars and Reservations are unique-membership
// id sets; order carries no meaning.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	Role         string    `json:"role"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	FavoriteCars []int     `json:"favoriteCars"`
	Reservations []int     `json:"reservations"`
}

// UserPatch is a partial update of a user record. Nil fields are left
// untouched by the server.
type UserPatch struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	FavoriteCars *[]int  `json:"favoriteCars,omitempty"`
	Reservations *[]int  `json:"reservations,omitempty"`
}

// Clone returns a copy of the user whose id slices do not alias the
// receiver's. Cached user records are always handed out cloned.
func (u User) Clone() User {
	out := u
	out.FavoriteCars = append([]int(nil), u.FavoriteCars...)
	out.Reservations = append([]int(nil), u.Reservations...)
	return out
}
