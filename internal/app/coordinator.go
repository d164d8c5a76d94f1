package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

// Compile-time check that Coordinator resolves references for the validator.
var _ validate.Resolver = (*Coordinator)(nil)

// Relations reports which relationship attributes a project write rewrote.
type Relations struct {
	Client      bool
	TeamMembers bool
}

// Coordinator keeps both sides of every edge consistent. Each write sequence
// is built as a plan of store actions on a RequestContext, owner side first
// and member side second. A failed write rolls back the writes before it.
// When the store supports transactions and the store config asks for them,
// the whole plan runs inside one transaction instead.
type Coordinator struct {
	store         ports.DocumentStore
	transactional bool
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// NewCoordinator creates a Coordinator over store. If metrics is nil, edge
// metrics are skipped.
func NewCoordinator(store ports.DocumentStore, cfg config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{
		store:         store,
		transactional: cfg.Transactional,
		metrics:       metrics,
		logger:        logger,
	}
}

// Resolve fetches a document by id. Within an HTTP request the result is
// memoized on the request's RequestContext.
// Returns domain.ErrNotFound if the document does not exist.
func (c *Coordinator) Resolve(ctx context.Context, kind domain.Kind, id int64) (domain.Document, error) {
	fetch := func(ctx context.Context) (domain.Document, error) {
		return c.store.Get(ctx, kind, id)
	}

	var (
		doc domain.Document
		err error
	)
	if rc := appctx.FromContext(ctx); rc != nil {
		doc, err = appctx.GetOrFetch(rc, docKey(kind, id), fetch)
	} else {
		doc, err = fetch(ctx)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("resolving %s %d: %w", kind, id, err)
	}
	return doc, nil
}

// Exists implements validate.Resolver.
func (c *Coordinator) Exists(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	_, err := c.Resolve(ctx, kind, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Attach links both ends of edge. It fails with domain.ErrNotFound when the
// project is missing, domain.ErrReferenceNotFound when the member is missing
// and domain.ErrAlreadyLinked when either end is already linked.
func (c *Coordinator) Attach(ctx context.Context, edge domain.Edge) error {
	c.logger.InfoContext(ctx, "attaching edge", slog.String("edge", edge.String()))

	err := c.run(ctx, func(_ context.Context, p *plan) error {
		proj, member, err := p.loadEdge(edge)
		if err != nil {
			return err
		}
		if err := edge.Attach(proj, member); err != nil {
			return err
		}
		if err := p.put(proj); err != nil {
			return err
		}
		return p.put(member)
	})
	c.recordEdge(ctx, edge.Kind, "attach", err)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to attach edge",
			slog.String("operation", "Attach"),
			slog.String("edge", edge.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Detach clears both ends of edge. It fails with domain.ErrReferenceMismatch
// when the two ends do not point at each other.
func (c *Coordinator) Detach(ctx context.Context, edge domain.Edge) error {
	c.logger.InfoContext(ctx, "detaching edge", slog.String("edge", edge.String()))

	err := c.run(ctx, func(_ context.Context, p *plan) error {
		proj, member, err := p.loadEdge(edge)
		if err != nil {
			return err
		}
		if err := edge.Detach(proj, member); err != nil {
			return err
		}
		if err := p.put(proj); err != nil {
			return err
		}
		return p.put(member)
	})
	c.recordEdge(ctx, edge.Kind, "detach", err)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to detach edge",
			slog.String("operation", "Detach"),
			slog.String("edge", edge.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Rewire writes an updated project together with the member-side writes its
// relationship changes imply. Partners dropped from a rewritten attribute are
// released, new partners are claimed and retained partners get the current
// project name. The project's stored document is re-read inside the plan.
func (c *Coordinator) Rewire(ctx context.Context, after *domain.Project, touched Relations) error {
	err := c.run(ctx, func(_ context.Context, p *plan) error {
		before, err := p.loadProject(after.ID)
		if err != nil {
			return err
		}

		var members []domain.Member
		if touched.Client {
			ms, err := p.rewireClient(before, after)
			if err != nil {
				return err
			}
			members = append(members, ms...)
		}
		if touched.TeamMembers {
			ms, err := p.rewireTeamMembers(before, after)
			if err != nil {
				return err
			}
			members = append(members, ms...)
		}

		if err := p.put(after); err != nil {
			return err
		}
		return p.putGroup(members)
	})
	if touched.Client {
		c.recordEdge(ctx, domain.EdgeProjectClient, "rewire", err)
	}
	if touched.TeamMembers {
		c.recordEdge(ctx, domain.EdgeProjectTeamMember, "rewire", err)
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to rewire project",
			slog.String("operation", "Rewire"),
			slog.Int64("project_id", after.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// RewireMember writes an updated client or team member. When the projects
// attribute was rewritten, the previously linked project drops the member
// and the newly named project gains it, before the member itself is written.
// The member's stored name copy is always the linked project's current name.
func (c *Coordinator) RewireMember(ctx context.Context, after domain.Member, touched bool) error {
	edgeKind, _ := domain.EdgeKindFor(after.Kind())

	err := c.run(ctx, func(_ context.Context, p *plan) error {
		before, err := p.loadMember(after.Kind(), after.Identity())
		if err != nil {
			return err
		}

		if touched {
			projects, err := p.repointMember(edgeKind, before, after)
			if err != nil {
				return err
			}
			for _, proj := range projects {
				if err := p.put(proj); err != nil {
					return err
				}
			}
		}
		return p.put(after)
	})
	if touched {
		c.recordEdge(ctx, edgeKind, "rewire", err)
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to rewire member",
			slog.String("operation", "RewireMember"),
			slog.String("kind", after.Kind().String()),
			slog.Int64("id", after.Identity()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// CascadeDeletePrep returns the writes that clear every reciprocal reference
// to the document, to run before the document is deleted.
// Returns domain.ErrNotFound if the document does not exist.
func (c *Coordinator) CascadeDeletePrep(ctx context.Context, kind domain.Kind, id int64) ([]domain.Action, error) {
	p := newPlan(ctx, c.store, true)
	return p.cascade(kind, id)
}

// Delete clears every reciprocal reference to the document as one parallel
// action group and then deletes it.
func (c *Coordinator) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	err := c.run(ctx, func(_ context.Context, p *plan) error {
		actions, err := p.cascade(kind, id)
		if err != nil {
			return err
		}
		if len(actions) > 0 {
			if err := p.rc.AddGroup(actions...); err != nil {
				return err
			}
		}
		return p.delete(kind, id)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to delete document",
			slog.String("operation", "Delete"),
			slog.String("kind", kind.String()),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// run builds and commits one plan. In transactional mode the plan runs on
// the transaction's store and compensation is off.
func (c *Coordinator) run(ctx context.Context, build func(ctx context.Context, p *plan) error) error {
	if txr, ok := c.transactor(); ok {
		return txr.InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
			return commitPlan(ctx, newPlan(ctx, tx, false), build)
		})
	}
	return commitPlan(ctx, newPlan(ctx, c.store, true), build)
}

func commitPlan(ctx context.Context, p *plan, build func(ctx context.Context, p *plan) error) error {
	if err := build(ctx, p); err != nil {
		return err
	}
	return p.rc.Commit(ctx)
}

// txSupport is implemented by store decorators that only sometimes wrap a
// transactional store.
type txSupport interface {
	SupportsTx() bool
}

func (c *Coordinator) transactor() (ports.Transactor, bool) {
	if !c.transactional {
		return nil, false
	}
	txr, ok := c.store.(ports.Transactor)
	if !ok {
		return nil, false
	}
	if ts, ok := c.store.(txSupport); ok && !ts.SupportsTx() {
		return nil, false
	}
	return txr, true
}

func (c *Coordinator) recordEdge(ctx context.Context, kind domain.EdgeKind, transition string, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrAlreadyLinked):
		result = "already_linked"
	case errors.Is(err, domain.ErrReferenceMismatch):
		result = "mismatched"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	c.metrics.EdgeTransitionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEdgeKind.String(string(kind)),
		telemetry.AttrTransition.String(transition),
		telemetry.AttrResult.String(result),
	))
}

func docKey(kind domain.Kind, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// plan is one write sequence bound to a store. Documents are read through
// the plan's RequestContext so every read is memoized and the first body
// seen for a document becomes the rollback target of its write.
type plan struct {
	store      ports.DocumentStore
	rc         *appctx.RequestContext
	compensate bool
	original   map[string]domain.Document
}

func newPlan(ctx context.Context, store ports.DocumentStore, compensate bool) *plan {
	return &plan{
		store:      store,
		rc:         appctx.New(ctx),
		compensate: compensate,
		original:   make(map[string]domain.Document),
	}
}

func (p *plan) load(kind domain.Kind, id int64) (domain.Document, error) {
	key := docKey(kind, id)
	return appctx.GetOrFetch(p.rc, key, func(ctx context.Context) (domain.Document, error) {
		doc, err := p.store.Get(ctx, kind, id)
		if err != nil {
			return domain.Document{}, fmt.Errorf("%s %d: %w", kind, id, err)
		}
		p.original[key] = doc
		return doc, nil
	})
}

func (p *plan) loadProject(id int64) (*domain.Project, error) {
	doc, err := p.load(domain.KindProject, id)
	if err != nil {
		return nil, err
	}
	return domain.Decode[domain.Project](doc)
}

func (p *plan) loadMember(kind domain.Kind, id int64) (domain.Member, error) {
	doc, err := p.load(kind, id)
	if err != nil {
		return nil, err
	}
	return domain.DecodeMember(doc)
}

// loadReference loads a member named by a relationship attribute. A missing
// member is a dangling reference, not a missing primary document.
func (p *plan) loadReference(kind domain.Kind, id int64) (domain.Member, error) {
	m, err := p.loadMember(kind, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s %d: %w", kind, id, domain.ErrReferenceNotFound)
	}
	return m, err
}

func (p *plan) loadEdge(edge domain.Edge) (*domain.Project, domain.Member, error) {
	if !edge.Kind.IsValid() {
		return nil, nil, domain.NewValidationError("edge", fmt.Sprintf("unknown edge kind %q", edge.Kind))
	}
	proj, err := p.loadProject(edge.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	member, err := p.loadReference(edge.Kind.MemberKind(), edge.MemberID)
	if err != nil {
		return nil, nil, err
	}
	return proj, member, nil
}

// putAction builds the write for e without queueing it.
func (p *plan) putAction(e domain.Entity) (*putAction, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	key := docKey(doc.Kind, doc.ID)
	prev, ok := p.original[key]
	if !ok {
		return nil, fmt.Errorf("writing %s: document was not read by this plan", key)
	}
	return &putAction{store: p.store, doc: doc, prev: prev, compensate: p.compensate}, nil
}

func (p *plan) put(e domain.Entity) error {
	action, err := p.putAction(e)
	if err != nil {
		return err
	}
	return p.rc.Stage(docKey(action.doc.Kind, action.doc.ID), action.doc, action)
}

func (p *plan) putGroup(members []domain.Member) error {
	if len(members) == 0 {
		return nil
	}
	actions := make([]domain.Action, 0, len(members))
	for _, m := range members {
		a, err := p.putAction(m)
		if err != nil {
			return err
		}
		actions = append(actions, a)
	}
	return p.rc.AddGroup(actions...)
}

func (p *plan) delete(kind domain.Kind, id int64) error {
	key := docKey(kind, id)
	prev, ok := p.original[key]
	if !ok {
		return fmt.Errorf("deleting %s: document was not read by this plan", key)
	}
	return p.rc.AddAction(&deleteAction{store: p.store, prev: prev, compensate: p.compensate})
}

// claim points m at proj. A member already linked to a different project
// fails with domain.ErrAlreadyLinked. It reports whether m changed.
func claim(proj *domain.Project, m domain.Member) (bool, error) {
	linked := m.LinkedProject()
	switch {
	case linked == nil:
		m.SetLinkedProject(proj.NameRef())
		return true, nil
	case linked.ID != proj.ID:
		return false, fmt.Errorf("%s %d is linked to project %d: %w",
			m.Kind(), m.Identity(), linked.ID, domain.ErrAlreadyLinked)
	default:
		edge := domain.Edge{ProjectID: proj.ID, MemberID: m.Identity()}
		return edge.Refresh(proj, m), nil
	}
}

func (p *plan) rewireClient(before, after *domain.Project) ([]domain.Member, error) {
	var oldID, newID int64
	if before.Client != nil {
		oldID = before.Client.ID
	}
	if after.Client != nil {
		newID = after.Client.ID
	}

	var changed []domain.Member
	if oldID != 0 && oldID != newID {
		released, err := p.release(domain.EdgeProjectClient, after.ID, oldID)
		if err != nil {
			return nil, err
		}
		changed = append(changed, released...)
	}
	if newID != 0 {
		m, err := p.loadReference(domain.KindClient, newID)
		if err != nil {
			return nil, err
		}
		ok, err := claim(after, m)
		if err != nil {
			return nil, err
		}
		if ok {
			changed = append(changed, m)
		}
	}
	return changed, nil
}

func (p *plan) rewireTeamMembers(before, after *domain.Project) ([]domain.Member, error) {
	after.TeamMembers = dedupeRefs(after.TeamMembers)

	var changed []domain.Member
	for _, id := range before.MemberIDs() {
		if after.HasMember(id) {
			continue
		}
		released, err := p.release(domain.EdgeProjectTeamMember, after.ID, id)
		if err != nil {
			return nil, err
		}
		changed = append(changed, released...)
	}
	for _, id := range after.MemberIDs() {
		m, err := p.loadReference(domain.KindTeamMember, id)
		if err != nil {
			return nil, err
		}
		ok, err := claim(after, m)
		if err != nil {
			return nil, err
		}
		if ok {
			changed = append(changed, m)
		}
	}
	return changed, nil
}

// release clears a former partner's reference when it still points at the
// project. A partner that no longer exists needs no write.
func (p *plan) release(kind domain.EdgeKind, projectID, memberID int64) ([]domain.Member, error) {
	m, err := p.loadMember(kind.MemberKind(), memberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	edge := domain.Edge{Kind: kind, ProjectID: projectID, MemberID: memberID}
	if !edge.Release(m) {
		return nil, nil
	}
	return []domain.Member{m}, nil
}

// repointMember moves a member from the project it was linked to onto the
// project its new projects attribute names, returning the project writes.
func (p *plan) repointMember(kind domain.EdgeKind, before, after domain.Member) ([]*domain.Project, error) {
	var oldID, newID int64
	if ref := before.LinkedProject(); ref != nil {
		oldID = ref.ID
	}
	if ref := after.LinkedProject(); ref != nil {
		newID = ref.ID
	}
	memberID := after.Identity()

	var changed []*domain.Project
	if oldID != 0 && oldID != newID {
		proj, err := p.loadProject(oldID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			if dropMember(kind, proj, memberID) {
				changed = append(changed, proj)
			}
		}
	}

	if newID == 0 {
		after.SetLinkedProject(nil)
		return changed, nil
	}

	proj, err := p.loadProject(newID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("projects %d: %w", newID, domain.ErrReferenceNotFound)
	}
	if err != nil {
		return nil, err
	}
	switch kind {
	case domain.EdgeProjectClient:
		if proj.Client != nil && proj.Client.ID != memberID {
			return nil, fmt.Errorf("project %d is linked to client %d: %w", proj.ID, proj.Client.ID, domain.ErrAlreadyLinked)
		}
		if proj.Client == nil {
			proj.Client = &domain.Ref{ID: memberID}
			changed = append(changed, proj)
		}
	case domain.EdgeProjectTeamMember:
		if !proj.HasMember(memberID) {
			proj.TeamMembers = append(proj.TeamMembers, domain.Ref{ID: memberID})
			changed = append(changed, proj)
		}
	}
	after.SetLinkedProject(proj.NameRef())
	return changed, nil
}

// dropMember removes the member from the project's side of the edge and
// reports whether the project changed.
func dropMember(kind domain.EdgeKind, proj *domain.Project, memberID int64) bool {
	if kind == domain.EdgeProjectClient {
		if proj.Client == nil || proj.Client.ID != memberID {
			return false
		}
		proj.Client = nil
		return true
	}
	if !proj.HasMember(memberID) {
		return false
	}
	proj.RemoveMember(memberID)
	return true
}

// cascade builds the writes that clear every reference to the document from
// its partners. The document itself is loaded so the delete can restore it.
func (p *plan) cascade(kind domain.Kind, id int64) ([]domain.Action, error) {
	doc, err := p.load(kind, id)
	if err != nil {
		return nil, err
	}

	var writes []domain.Entity
	switch kind {
	case domain.KindProject:
		proj, err := domain.Decode[domain.Project](doc)
		if err != nil {
			return nil, err
		}
		if proj.Client != nil {
			released, err := p.release(domain.EdgeProjectClient, id, proj.Client.ID)
			if err != nil {
				return nil, err
			}
			for _, m := range released {
				writes = append(writes, m)
			}
		}
		for _, memberID := range dedupeIDs(proj.MemberIDs()) {
			released, err := p.release(domain.EdgeProjectTeamMember, id, memberID)
			if err != nil {
				return nil, err
			}
			for _, m := range released {
				writes = append(writes, m)
			}
		}
	case domain.KindClient, domain.KindTeamMember:
		m, err := domain.DecodeMember(doc)
		if err != nil {
			return nil, err
		}
		ref := m.LinkedProject()
		if ref == nil {
			break
		}
		proj, err := p.loadProject(ref.ID)
		if errors.Is(err, domain.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		edgeKind, _ := domain.EdgeKindFor(kind)
		if dropMember(edgeKind, proj, id) {
			writes = append(writes, proj)
		}
	}

	actions := make([]domain.Action, 0, len(writes))
	for _, e := range writes {
		a, err := p.putAction(e)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func dedupeRefs(refs []domain.Ref) []domain.Ref {
	out := make([]domain.Ref, 0, len(refs))
	seen := make(map[int64]bool, len(refs))
	for _, r := range refs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

func dedupeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
