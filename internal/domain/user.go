package domain

// User is a registered caller identity. Admin users may modify and delete
// clients and team members.
type User struct {
	ID    int64  `json:"-"`
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// Kind implements Entity.
func (u *User) Kind() Kind { return KindUser }

// Identity implements Entity.
func (u *User) Identity() int64 { return u.ID }

func (u *User) setIdentity(id int64) { u.ID = id }

// Document encodes the user for the store.
func (u *User) Document() (Document, error) {
	return NewDocument(KindUser, u.ID, u)
}
