package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
	"github.com/dankimjw/portfolio-api/internal/app/fanout"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// scanBatch is the page size used to walk each collection.
const scanBatch = 100

// DriftType classifies an edge whose two sides disagree.
type DriftType string

const (
	// DriftDangling is a reference to a document that does not exist.
	DriftDangling DriftType = "dangling"
	// DriftOneSided is a reference whose target does not point back.
	DriftOneSided DriftType = "one_sided"
	// DriftStaleName is a member whose project name copy is out of date.
	DriftStaleName DriftType = "stale_name"
)

// Side names the end of an edge that holds the faulty reference.
type Side string

const (
	SideProject Side = "project"
	SideMember  Side = "member"
)

// Drift is one inconsistent edge.
type Drift struct {
	Type   DriftType   `json:"type"`
	Side   Side        `json:"side"`
	Edge   domain.Edge `json:"edge"`
	Detail string      `json:"detail"`
}

// ScanStats counts what a scan looked at.
type ScanStats struct {
	Projects    int `json:"projects"`
	Clients     int `json:"clients"`
	TeamMembers int `json:"team_members"`
	Edges       int `json:"edges"`
}

// Report is the result of one scan.
type Report struct {
	Stats  ScanStats `json:"stats"`
	Drifts []Drift   `json:"drifts"`
}

// Reconciler verifies that both sides of every edge agree and repairs the
// ones that do not. It covers the window the two-write relationship update
// leaves open when a second write fails.
type Reconciler struct {
	store       ports.DocumentStore
	coordinator *Coordinator
	workers     int
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// NewReconciler creates a Reconciler. If metrics is nil, drift metrics are
// skipped.
func NewReconciler(store ports.DocumentStore, coordinator *Coordinator, cfg config.ReconcileConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Reconciler{
		store:       store,
		coordinator: coordinator,
		workers:     workers,
		metrics:     metrics,
		logger:      logger,
	}
}

// Scan walks every project, client and team member and reports each edge
// whose sides disagree. Documents are checked concurrently with at most
// the configured number of workers.
func (r *Reconciler) Scan(ctx context.Context) (*Report, error) {
	r.logger.InfoContext(ctx, "scanning edges", slog.Int("workers", r.workers))

	stats := appctx.NewRef(ScanStats{})
	report := &Report{Drifts: []Drift{}}

	projects, err := r.all(ctx, domain.KindProject)
	if err != nil {
		return nil, err
	}
	stats.Update(func(s *ScanStats) { s.Projects = len(projects) })

	results := fanout.Run(ctx, r.workers, projects, func(ctx context.Context, doc domain.Document) ([]Drift, error) {
		return r.checkProject(ctx, doc, stats)
	})
	if err := collect(report, results); err != nil {
		return nil, err
	}

	for _, kind := range []domain.Kind{domain.KindClient, domain.KindTeamMember} {
		members, err := r.all(ctx, kind)
		if err != nil {
			return nil, err
		}
		stats.Update(func(s *ScanStats) {
			if kind == domain.KindClient {
				s.Clients = len(members)
			} else {
				s.TeamMembers = len(members)
			}
		})

		results := fanout.Run(ctx, r.workers, members, func(ctx context.Context, doc domain.Document) ([]Drift, error) {
			return r.checkMember(ctx, doc, stats)
		})
		if err := collect(report, results); err != nil {
			return nil, err
		}
	}

	report.Stats = stats.Get()
	for _, d := range report.Drifts {
		r.recordDrift(ctx, d)
	}

	r.logger.InfoContext(ctx, "edge scan complete",
		slog.Int("projects", report.Stats.Projects),
		slog.Int("clients", report.Stats.Clients),
		slog.Int("team_members", report.Stats.TeamMembers),
		slog.Int("drifts", len(report.Drifts)),
	)
	return report, nil
}

// Repair fixes every drift in the report: the side holding a dangling or
// one-sided reference is cleared and stale name copies are refreshed. Each
// repair re-reads both documents, so drift fixed since the scan is skipped.
// It returns the number of drifts that needed a write.
func (r *Reconciler) Repair(ctx context.Context, report *Report) (int, error) {
	r.logger.InfoContext(ctx, "repairing edges", slog.Int("drifts", len(report.Drifts)))

	var (
		repaired int
		errs     []error
	)
	for _, d := range report.Drifts {
		changed, err := r.coordinator.repair(ctx, d)
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to repair edge",
				slog.String("operation", "Repair"),
				slog.String("edge", d.Edge.String()),
				slog.String("drift", string(d.Type)),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("repairing %s %s: %w", d.Type, d.Edge, err))
			continue
		}
		if changed {
			repaired++
		}
	}
	return repaired, errors.Join(errs...)
}

func (r *Reconciler) all(ctx context.Context, kind domain.Kind) ([]domain.Document, error) {
	var docs []domain.Document
	page := domain.Page{Limit: scanBatch}
	for {
		res, err := r.store.Query(ctx, kind, nil, page)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", kind, err)
		}
		docs = append(docs, res.Documents...)
		if !res.More {
			return docs, nil
		}
		page.Offset += len(res.Documents)
	}
}

func (r *Reconciler) checkProject(ctx context.Context, doc domain.Document, stats *appctx.SafeRef[ScanStats]) ([]Drift, error) {
	proj, err := domain.Decode[domain.Project](doc)
	if err != nil {
		return nil, err
	}

	var edges []domain.Edge
	if proj.Client != nil {
		edges = append(edges, domain.Edge{Kind: domain.EdgeProjectClient, ProjectID: proj.ID, MemberID: proj.Client.ID})
	}
	for _, id := range dedupeIDs(proj.MemberIDs()) {
		edges = append(edges, domain.Edge{Kind: domain.EdgeProjectTeamMember, ProjectID: proj.ID, MemberID: id})
	}
	stats.Update(func(s *ScanStats) { s.Edges += len(edges) })

	var drifts []Drift
	for _, edge := range edges {
		memberDoc, err := r.store.Get(ctx, edge.Kind.MemberKind(), edge.MemberID)
		if errors.Is(err, domain.ErrNotFound) {
			drifts = append(drifts, Drift{
				Type: DriftDangling, Side: SideProject, Edge: edge,
				Detail: fmt.Sprintf("%s %d does not exist", edge.Kind.MemberKind(), edge.MemberID),
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		m, err := domain.DecodeMember(memberDoc)
		if err != nil {
			return nil, err
		}
		if edge.State(proj, m) == domain.EdgeOneSided {
			drifts = append(drifts, Drift{
				Type: DriftOneSided, Side: SideProject, Edge: edge,
				Detail: fmt.Sprintf("%s %d does not point back at project %d", m.Kind(), edge.MemberID, proj.ID),
			})
		}
	}
	return drifts, nil
}

func (r *Reconciler) checkMember(ctx context.Context, doc domain.Document, stats *appctx.SafeRef[ScanStats]) ([]Drift, error) {
	m, err := domain.DecodeMember(doc)
	if err != nil {
		return nil, err
	}
	ref := m.LinkedProject()
	if ref == nil {
		return nil, nil
	}

	edgeKind, _ := domain.EdgeKindFor(m.Kind())
	edge := domain.Edge{Kind: edgeKind, ProjectID: ref.ID, MemberID: m.Identity()}
	stats.Update(func(s *ScanStats) { s.Edges++ })

	projDoc, err := r.store.Get(ctx, domain.KindProject, ref.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return []Drift{{
			Type: DriftDangling, Side: SideMember, Edge: edge,
			Detail: fmt.Sprintf("project %d does not exist", ref.ID),
		}}, nil
	}
	if err != nil {
		return nil, err
	}
	proj, err := domain.Decode[domain.Project](projDoc)
	if err != nil {
		return nil, err
	}

	switch {
	case edge.State(proj, m) == domain.EdgeOneSided:
		return []Drift{{
			Type: DriftOneSided, Side: SideMember, Edge: edge,
			Detail: fmt.Sprintf("project %d does not point back at %s %d", proj.ID, m.Kind(), m.Identity()),
		}}, nil
	case ref.Name != proj.Name:
		return []Drift{{
			Type: DriftStaleName, Side: SideMember, Edge: edge,
			Detail: fmt.Sprintf("name copy %q, project name %q", ref.Name, proj.Name),
		}}, nil
	}
	return nil, nil
}

func collect(report *Report, results []fanout.Result[[]Drift]) error {
	if errs := fanout.Errors(results); len(errs) > 0 {
		return errors.Join(errs...)
	}
	for _, res := range results {
		report.Drifts = append(report.Drifts, res.Value...)
	}
	return nil
}

func (r *Reconciler) recordDrift(ctx context.Context, d Drift) {
	if r.metrics == nil {
		return
	}
	r.metrics.ReconcileDriftTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrDrift.String(string(d.Type)),
		telemetry.AttrEdgeKind.String(string(d.Edge.Kind)),
	))
}

// repair applies the fix for one drift as a plan. It reports whether any
// document was written.
func (c *Coordinator) repair(ctx context.Context, d Drift) (bool, error) {
	changed := false
	err := c.run(ctx, func(_ context.Context, p *plan) error {
		changed = false
		edge := d.Edge

		switch {
		case d.Type == DriftStaleName:
			proj, err := p.loadProject(edge.ProjectID)
			if err != nil {
				return ignoreNotFound(err)
			}
			m, err := p.loadMember(edge.Kind.MemberKind(), edge.MemberID)
			if err != nil {
				return ignoreNotFound(err)
			}
			if edge.State(proj, m) != domain.EdgeLinked || !edge.Refresh(proj, m) {
				return nil
			}
			changed = true
			return p.put(m)

		case d.Side == SideProject:
			proj, err := p.loadProject(edge.ProjectID)
			if err != nil {
				return ignoreNotFound(err)
			}
			m, err := p.loadMember(edge.Kind.MemberKind(), edge.MemberID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
			case err != nil:
				return err
			case edge.State(proj, m) != domain.EdgeOneSided:
				return nil
			}
			if !dropMember(edge.Kind, proj, edge.MemberID) {
				return nil
			}
			changed = true
			return p.put(proj)

		default:
			m, err := p.loadMember(edge.Kind.MemberKind(), edge.MemberID)
			if err != nil {
				return ignoreNotFound(err)
			}
			proj, err := p.loadProject(edge.ProjectID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
			case err != nil:
				return err
			case edge.State(proj, m) != domain.EdgeOneSided:
				return nil
			}
			if !edge.Release(m) {
				return nil
			}
			changed = true
			return p.put(m)
		}
	})
	c.recordEdge(ctx, d.Edge.Kind, "repair", err)
	return changed, err
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
