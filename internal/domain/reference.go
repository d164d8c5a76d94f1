package domain

// Ref points at another document by id. It is the shape of a project's
// client reference and of each team_members element.
type Ref struct {
	ID int64 `json:"id"`
}

// NamedRef points at a project and carries a copy of the project's name as it
// was when the link was last written.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
