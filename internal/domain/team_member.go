package domain

// TeamMember is a person assigned to at most one Project at a time.
type TeamMember struct {
	ID        int64     `json:"-"`
	Name      string    `json:"name"`
	JoinDate  string    `json:"join_date"`
	Specialty string    `json:"specialty"`
	Projects  *NamedRef `json:"projects"`
}

// Kind implements Entity.
func (m *TeamMember) Kind() Kind { return KindTeamMember }

// Identity implements Entity.
func (m *TeamMember) Identity() int64 { return m.ID }

func (m *TeamMember) setIdentity(id int64) { m.ID = id }

// Document encodes the team member for the store.
func (m *TeamMember) Document() (Document, error) {
	return NewDocument(KindTeamMember, m.ID, m)
}

// LinkedProject implements Member.
func (m *TeamMember) LinkedProject() *NamedRef { return m.Projects }

// SetLinkedProject implements Member.
func (m *TeamMember) SetLinkedProject(ref *NamedRef) { m.Projects = ref }
