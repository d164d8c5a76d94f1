package domain

import "fmt"

// Entity is a typed view of a stored document.
type Entity interface {
	Kind() Kind
	Identity() int64
	Document() (Document, error)
	setIdentity(id int64)
}

// Member is the non-owner side of an edge: a Client or a TeamMember.
type Member interface {
	Entity
	LinkedProject() *NamedRef
	SetLinkedProject(ref *NamedRef)
}

// Decode converts a stored document into its typed entity. The document kind
// must match the entity kind.
func Decode[T any, PT interface {
	*T
	Entity
}](doc Document) (PT, error) {
	var v T
	e := PT(&v)
	if doc.Kind != e.Kind() {
		return nil, fmt.Errorf("decoding %s %d as %s: kind mismatch", doc.Kind, doc.ID, e.Kind())
	}
	if err := doc.Decode(e); err != nil {
		return nil, err
	}
	e.setIdentity(doc.ID)
	return e, nil
}

// DecodeMember decodes a client or team member document.
func DecodeMember(doc Document) (Member, error) {
	switch doc.Kind {
	case KindClient:
		c, err := Decode[Client](doc)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindTeamMember:
		m, err := Decode[TeamMember](doc)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("decoding %s %d: not a member kind", doc.Kind, doc.ID)
	}
}
