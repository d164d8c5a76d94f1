// Package dto holds the HTTP representations of portfolio resources, query
// parameter parsing, and RFC 9457 Problem Details error responses for the
// inbound HTTP adapter.
package dto

import (
	"encoding/json"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// RefResponse is a reference to another resource with its self link.
type RefResponse struct {
	ID   int64  `json:"id"`
	Self string `json:"self"`
}

// NamedRefResponse is a member's reference to its project.
type NamedRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Self string `json:"self"`
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Budget      int64         `json:"budget"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Owner       string        `json:"project_owner"`
	Client      *RefResponse  `json:"client"`
	TeamMembers []RefResponse `json:"team_members"`
	Self        string        `json:"self"`
}

// ClientResponse represents a single client in HTTP responses.
type ClientResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Industry string            `json:"industry"`
	JoinDate string            `json:"join_date"`
	Projects *NamedRefResponse `json:"projects"`
	Self     string            `json:"self"`
}

// TeamMemberResponse represents a single team member in HTTP responses.
type TeamMemberResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	JoinDate  string            `json:"join_date"`
	Specialty string            `json:"specialty"`
	Projects  *NamedRefResponse `json:"projects"`
	Self      string            `json:"self"`
}

// UserResponse represents a registered caller.
type UserResponse struct {
	ID    int64  `json:"id"`
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	Self  string `json:"self"`
}

// ListResponse is one page of a collection. It encodes as
// {"<key>": [...], "next": "..."} with next omitted on the last page.
type ListResponse[T any] struct {
	Key   string
	Items []T
	Next  string
}

// MarshalJSON implements json.Marshaler.
func (l ListResponse[T]) MarshalJSON() ([]byte, error) {
	items := l.Items
	if items == nil {
		items = []T{}
	}
	out := map[string]any{l.Key: items}
	if l.Next != "" {
		out["next"] = l.Next
	}
	return json.Marshal(out)
}

// ToProjectResponse converts a domain project to its HTTP representation.
func ToProjectResponse(l Links, p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Budget:      p.Budget,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Owner:       p.Owner,
		TeamMembers: make([]RefResponse, len(p.TeamMembers)),
		Self:        l.Resource(domain.KindProject, p.ID),
	}
	if p.Client != nil {
		resp.Client = &RefResponse{ID: p.Client.ID, Self: l.Resource(domain.KindClient, p.Client.ID)}
	}
	for i, ref := range p.TeamMembers {
		resp.TeamMembers[i] = RefResponse{ID: ref.ID, Self: l.Resource(domain.KindTeamMember, ref.ID)}
	}
	return resp
}

// ToClientResponse converts a domain client to its HTTP representation.
func ToClientResponse(l Links, c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry.String(),
		JoinDate: c.JoinDate,
		Projects: toNamedRef(l, c.Projects),
		Self:     l.Resource(domain.KindClient, c.ID),
	}
}

// ToTeamMemberResponse converts a domain team member to its HTTP
// representation.
func ToTeamMemberResponse(l Links, m *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		JoinDate:  m.JoinDate,
		Specialty: m.Specialty,
		Projects:  toNamedRef(l, m.Projects),
		Self:      l.Resource(domain.KindTeamMember, m.ID),
	}
}

// ToUserResponse converts a registered user to its HTTP representation.
func ToUserResponse(l Links, u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Sub:   u.Sub,
		Name:  u.Name,
		Email: u.Email,
		Admin: u.Admin,
		Self:  l.Resource(domain.KindUser, u.ID),
	}
}

// ToList converts a page of entities listed under key. next is set only
// when more is true.
func ToList[E, R any](l Links, key string, items []E, page domain.Page, more bool, conv func(Links, *E) R) ListResponse[R] {
	resp := ListResponse[R]{Key: key, Items: make([]R, len(items))}
	for i := range items {
		resp.Items[i] = conv(l, &items[i])
	}
	if more {
		resp.Next = l.Next(page)
	}
	return resp
}

func toNamedRef(l Links, ref *domain.NamedRef) *NamedRefResponse {
	if ref == nil {
		return nil
	}
	return &NamedRefResponse{ID: ref.ID, Name: ref.Name, Self: l.Resource(domain.KindProject, ref.ID)}
}
