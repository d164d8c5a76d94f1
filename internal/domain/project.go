package domain

// Project is a unit of work owned by a single caller identity. It links to at
// most one Client and to any number of TeamMembers.
type Project struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Budget      int64  `json:"budget"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Owner       string `json:"project_owner"`
	Client      *Ref   `json:"client"`
	TeamMembers []Ref  `json:"team_members"`
}

// Kind implements Entity.
func (p *Project) Kind() Kind { return KindProject }

// Identity implements Entity.
func (p *Project) Identity() int64 { return p.ID }

func (p *Project) setIdentity(id int64) { p.ID = id }

// Document encodes the project for the store. A nil member list is stored as
// an empty sequence.
func (p *Project) Document() (Document, error) {
	if p.TeamMembers == nil {
		p.TeamMembers = []Ref{}
	}
	return NewDocument(KindProject, p.ID, p)
}

// HasMember reports whether id appears in the project's team_members.
func (p *Project) HasMember(id int64) bool {
	for _, r := range p.TeamMembers {
		if r.ID == id {
			return true
		}
	}
	return false
}

// RemoveMember drops every team_members element equal to {id}.
func (p *Project) RemoveMember(id int64) {
	kept := make([]Ref, 0, len(p.TeamMembers))
	for _, r := range p.TeamMembers {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	p.TeamMembers = kept
}

// MemberIDs returns the ids in team_members in stored order.
func (p *Project) MemberIDs() []int64 {
	ids := make([]int64, 0, len(p.TeamMembers))
	for _, r := range p.TeamMembers {
		ids = append(ids, r.ID)
	}
	return ids
}

// NameRef returns the denormalized reference a linked member stores.
func (p *Project) NameRef() *NamedRef {
	return &NamedRef{ID: p.ID, Name: p.Name}
}
