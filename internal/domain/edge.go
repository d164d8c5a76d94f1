package domain

import "fmt"

// EdgeKind identifies one of the two relationship types.
type EdgeKind string

const (
	// EdgeProjectClient is the one-to-one Project.client <-> Client.projects link.
	EdgeProjectClient EdgeKind = "project-client"
	// EdgeProjectTeamMember is the one-to-many Project.team_members <-> TeamMember.projects link.
	EdgeProjectTeamMember EdgeKind = "project-team_member"
)

// EdgeKindFor returns the edge kind whose member side is the given kind.
func EdgeKindFor(member Kind) (EdgeKind, bool) {
	switch member {
	case KindClient:
		return EdgeProjectClient, true
	case KindTeamMember:
		return EdgeProjectTeamMember, true
	default:
		return "", false
	}
}

// MemberKind returns the collection holding the member side of the edge.
func (k EdgeKind) MemberKind() Kind {
	if k == EdgeProjectClient {
		return KindClient
	}
	return KindTeamMember
}

// IsValid returns true if the edge kind is one of the defined constants.
func (k EdgeKind) IsValid() bool {
	return k == EdgeProjectClient || k == EdgeProjectTeamMember
}

// String implements fmt.Stringer.
func (k EdgeKind) String() string {
	return string(k)
}

// EdgeState is the observed state of one edge.
type EdgeState string

const (
	EdgeUnlinked EdgeState = "unlinked"
	EdgeLinked   EdgeState = "linked"
	// EdgeOneSided means exactly one end points at the other. It is never
	// produced by Attach or Detach; it only appears after a partial write.
	EdgeOneSided EdgeState = "one-sided"
)

// Edge is a two-sided pointer between a project (the owner side) and a
// client or team member (the member side). The only legal transitions are
// Attach (unlinked -> linked) and Detach (linked -> unlinked).
type Edge struct {
	Kind      EdgeKind `json:"kind"`
	ProjectID int64    `json:"project_id"`
	MemberID  int64    `json:"member_id"`
}

func (e Edge) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.ProjectID, e.MemberID)
}

func (e Edge) projectPointsAtMember(p *Project) bool {
	if e.Kind == EdgeProjectClient {
		return p.Client != nil && p.Client.ID == e.MemberID
	}
	return p.HasMember(e.MemberID)
}

func (e Edge) memberPointsAtProject(m Member) bool {
	ref := m.LinkedProject()
	return ref != nil && ref.ID == e.ProjectID
}

func (e Edge) check(p *Project, m Member) error {
	if p == nil || m == nil {
		return fmt.Errorf("%s: %w", e, ErrReferenceNotFound)
	}
	if p.ID != e.ProjectID || m.Identity() != e.MemberID || m.Kind() != e.Kind.MemberKind() {
		return fmt.Errorf("%s: documents do not match edge ends", e)
	}
	return nil
}

// State reports whether the two documents currently point at each other.
func (e Edge) State(p *Project, m Member) EdgeState {
	fwd := e.projectPointsAtMember(p)
	back := e.memberPointsAtProject(m)
	switch {
	case fwd && back:
		return EdgeLinked
	case !fwd && !back:
		return EdgeUnlinked
	default:
		return EdgeOneSided
	}
}

// Attach links both ends in memory. Both ends must be unlinked: a member that
// already has a project reference, or a project that already has a client,
// fails with ErrAlreadyLinked, including when the existing link is to the
// same partner.
func (e Edge) Attach(p *Project, m Member) error {
	if err := e.check(p, m); err != nil {
		return err
	}
	if m.LinkedProject() != nil {
		return fmt.Errorf("%s %d is linked to project %d: %w",
			m.Kind(), m.Identity(), m.LinkedProject().ID, ErrAlreadyLinked)
	}
	switch e.Kind {
	case EdgeProjectClient:
		if p.Client != nil {
			return fmt.Errorf("project %d is linked to client %d: %w", p.ID, p.Client.ID, ErrAlreadyLinked)
		}
		p.Client = &Ref{ID: e.MemberID}
	case EdgeProjectTeamMember:
		if p.HasMember(e.MemberID) {
			return fmt.Errorf("project %d already lists team member %d: %w", p.ID, e.MemberID, ErrAlreadyLinked)
		}
		p.TeamMembers = append(p.TeamMembers, Ref{ID: e.MemberID})
	}
	m.SetLinkedProject(p.NameRef())
	return nil
}

// Detach clears both ends in memory. For a client edge both ends must point
// at each other; for a team member edge the member must point at the
// project. Otherwise it fails with ErrReferenceMismatch.
func (e Edge) Detach(p *Project, m Member) error {
	if err := e.check(p, m); err != nil {
		return err
	}
	if !e.memberPointsAtProject(m) {
		return fmt.Errorf("%s %d is not linked to project %d: %w",
			m.Kind(), m.Identity(), p.ID, ErrReferenceMismatch)
	}
	switch e.Kind {
	case EdgeProjectClient:
		if !e.projectPointsAtMember(p) {
			return fmt.Errorf("project %d is not linked to client %d: %w", p.ID, e.MemberID, ErrReferenceMismatch)
		}
		p.Client = nil
	case EdgeProjectTeamMember:
		p.RemoveMember(e.MemberID)
	}
	m.SetLinkedProject(nil)
	return nil
}

// Release clears the member's side only. It is used when the project side is
// about to be deleted or has already dropped the member.
func (e Edge) Release(m Member) bool {
	if !e.memberPointsAtProject(m) {
		return false
	}
	m.SetLinkedProject(nil)
	return true
}

// Refresh rewrites the member's denormalized project name. It reports whether
// the stored copy changed.
func (e Edge) Refresh(p *Project, m Member) bool {
	ref := m.LinkedProject()
	if ref == nil || ref.ID != p.ID || ref.Name == p.Name {
		return false
	}
	m.SetLinkedProject(p.NameRef())
	return true
}
