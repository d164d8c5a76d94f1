package validate

import "github.com/dankimjw/portfolio-api/internal/domain"

// Op is the kind of write a payload is submitted for.
type Op string

const (
	// OpCreate requires exactly the entity's base attributes.
	OpCreate Op = "create"
	// OpReplace requires exactly the base attributes plus the relationship attributes.
	OpReplace Op = "replace"
	// OpPatch accepts any non-empty subset of the recognized attributes.
	OpPatch Op = "patch"
)

// Field is one row of a schema: an attribute name, its rule, whether the
// operation requires it, and for references the collection its ids resolve in.
type Field struct {
	Name     string
	Check    Check
	Required bool
	Target   domain.Kind
}

// Table maps entity kind and operation to the ordered attribute rules one
// generic routine applies.
type Table map[domain.Kind]map[Op][]Field

// Fields returns the schema rows for kind and op.
func (t Table) Fields(kind domain.Kind, op Op) ([]Field, bool) {
	ops, ok := t[kind]
	if !ok {
		return nil, false
	}
	fields, ok := ops[op]
	return fields, ok
}

// entitySchema lists the base attributes and the relationship attributes of
// one entity type; NewTable expands it per operation.
type entitySchema struct {
	base      []Field
	relations []Field
}

// NewTable builds the schema table for projects, clients and team members.
func NewTable() Table {
	schemas := map[domain.Kind]entitySchema{
		domain.KindProject: {
			base: []Field{
				{Name: "name", Check: Text(3, 30)},
				{Name: "budget", Check: Budget},
				{Name: "description", Check: Text(3, 50)},
				{Name: "start_date", Check: Date},
				{Name: "end_date", Check: Date},
			},
			relations: []Field{
				{Name: "client", Check: IDRef, Target: domain.KindClient},
				{Name: "team_members", Check: IDRefList, Target: domain.KindTeamMember},
			},
		},
		domain.KindClient: {
			base: []Field{
				{Name: "name", Check: Text(3, 30)},
				{Name: "industry", Check: IndustryName},
				{Name: "join_date", Check: Date},
			},
			relations: []Field{
				{Name: "projects", Check: ProjectRef, Target: domain.KindProject},
			},
		},
		domain.KindTeamMember: {
			base: []Field{
				{Name: "name", Check: Text(3, 30)},
				{Name: "join_date", Check: Date},
				{Name: "specialty", Check: Text(3, 20)},
			},
			relations: []Field{
				{Name: "projects", Check: ProjectRef, Target: domain.KindProject},
			},
		},
	}

	table := make(Table, len(schemas))
	for kind, s := range schemas {
		all := append(append([]Field{}, s.base...), s.relations...)
		table[kind] = map[Op][]Field{
			OpCreate:  withRequired(s.base, true),
			OpReplace: withRequired(all, true),
			OpPatch:   withRequired(all, false),
		}
	}
	return table
}

func withRequired(fields []Field, required bool) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Required = required
		out[i] = f
	}
	return out
}
