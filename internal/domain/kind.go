package domain

// Kind names a document collection in the store.
type Kind string

const (
	KindProject    Kind = "projects"
	KindClient     Kind = "clients"
	KindTeamMember Kind = "team_members"
	KindUser       Kind = "users"
)

// Kinds lists every collection in a stable order.
func Kinds() []Kind {
	return []Kind{KindProject, KindClient, KindTeamMember, KindUser}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindProject, KindClient, KindTeamMember, KindUser:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
