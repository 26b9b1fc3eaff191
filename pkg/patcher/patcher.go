// Package patcher runs the read-modify-write pass that installs catalog
// panels into a dashboard file. Every precondition is checked before the file
// is touched, so a failed run leaves the dashboard exactly as it was.
package patcher

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/dashpatch/pkg/catalog"
	"github.com/ethpandaops/dashpatch/pkg/config"
	"github.com/ethpandaops/dashpatch/pkg/dashboard"
)

// Options tune a single patch run.
type Options struct {
	// Path overrides the configured dashboard path when set.
	Path string
	// DryRun computes the change and its diff without writing the file.
	DryRun bool
}

// Group summarizes one section of panels touched by a run.
type Group struct {
	Title  string
	Panels int
}

// Report describes the outcome of a patch run.
type Report struct {
	Path    string
	DryRun  bool
	Outcome dashboard.OutcomeKind
	Groups  []Group

	PanelsAdded   int
	PanelsUpdated int

	// Y is the grid row of the first inserted or updated panel.
	Y int
	// Shift is how far panels below the change were moved down.
	Shift int

	// Diff is a line diff of the dashboard file, only set on dry runs.
	Diff string
}

// Patcher installs dashboard panels according to a configuration.
type Patcher struct {
	log logrus.FieldLogger
	cfg *config.Config
}

// New creates a new Patcher.
func New(log logrus.FieldLogger, cfg *config.Config) *Patcher {
	return &Patcher{
		log: log.WithField("package", "patcher"),
		cfg: cfg,
	}
}

// AddDatabasePanels inserts the database sections at the end of the section
// headed by the configured anchor row. Panels below the insertion point move
// down by the exact height of the inserted block.
func (p *Patcher) AddDatabasePanels(opts Options) (*Report, error) {
	path := p.path(opts)
	log := p.log.WithField("path", path)

	doc, err := dashboard.Load(path)
	if err != nil {
		return nil, err
	}

	anchor := p.cfg.Panels.DatabaseAnchor

	rowIndex, err := doc.FindRow(anchor)
	if err != nil {
		return nil, err
	}

	index := doc.SectionEnd(rowIndex)

	baseY, err := doc.SectionBottom(rowIndex)
	if err != nil {
		return nil, err
	}

	block := catalog.DatabaseBlock(p.cfg.Settings())

	shift, err := doc.InsertBlock(index, baseY, block)
	if err != nil {
		return nil, fmt.Errorf("failed to insert database panels: %w", err)
	}

	log.WithFields(logrus.Fields{
		"anchor": anchor,
		"index":  index,
		"y":      baseY,
		"shift":  shift,
		"count":  len(block),
	}).Debug("inserted database panel block")

	report := &Report{
		Path:        path,
		DryRun:      opts.DryRun,
		Outcome:     dashboard.Inserted,
		Groups:      groups(block),
		PanelsAdded: len(block),
		Y:           baseY,
		Shift:       shift,
	}

	if err := p.commit(path, doc, report); err != nil {
		return nil, err
	}

	return report, nil
}

// AddTransactionCreationPanel inserts the transaction creation panel below the
// configured anchor row, or refreshes it in place when the reserved ID is
// already present.
func (p *Patcher) AddTransactionCreationPanel(opts Options) (*Report, error) {
	path := p.path(opts)

	doc, err := dashboard.Load(path)
	if err != nil {
		return nil, err
	}

	settings := p.cfg.Settings()
	id := p.cfg.Panels.TxCreationID

	outcome, err := doc.Upsert(dashboard.Singleton{
		ID:     id,
		Anchor: p.cfg.Panels.TxCreationAnchor,
		Rect:   catalog.TransactionCreationRect,
		Build: func(rect dashboard.GridPos) dashboard.Panel {
			return catalog.TransactionCreationPanel(settings, id, rect)
		},
	})
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"path":    path,
		"id":      id,
		"outcome": outcome.Kind,
		"y":       outcome.GridPos.Y,
	}).Debug("placed transaction creation panel")

	report := &Report{
		Path:    path,
		DryRun:  opts.DryRun,
		Outcome: outcome.Kind,
		Groups:  []Group{{Title: doc.Panels[outcome.Index].Title(), Panels: 1}},
		Y:       outcome.GridPos.Y,
		Shift:   outcome.Shift,
	}

	if outcome.Kind == dashboard.Updated {
		report.PanelsUpdated = 1
	} else {
		report.PanelsAdded = 1
	}

	if err := p.commit(path, doc, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Check loads the dashboard and reports duplicate IDs and overlapping panels.
func (p *Patcher) Check(opts Options) ([]dashboard.Issue, error) {
	doc, err := dashboard.Load(p.path(opts))
	if err != nil {
		return nil, err
	}

	return doc.Validate(), nil
}

// Inspect loads the dashboard for read-only display.
func (p *Patcher) Inspect(opts Options) (*dashboard.Document, error) {
	return dashboard.Load(p.path(opts))
}

func (p *Patcher) path(opts Options) string {
	if opts.Path != "" {
		return opts.Path
	}

	return p.cfg.Dashboard.Path
}

// commit writes the document back, or fills in the diff on a dry run.
func (p *Patcher) commit(path string, doc *dashboard.Document, report *Report) error {
	if report.DryRun {
		updated, err := doc.Bytes()
		if err != nil {
			return err
		}

		report.Diff = LineDiff(string(doc.Source()), string(updated))
		p.log.WithField("path", path).Info("dry run, dashboard not written")

		return nil
	}

	if err := doc.Save(path); err != nil {
		return err
	}

	p.log.WithField("path", path).Info("dashboard updated")

	return nil
}

// groups counts block panels under each row divider.
func groups(block []dashboard.Panel) []Group {
	out := make([]Group, 0, 4)

	for _, panel := range block {
		if panel.IsRow() {
			out = append(out, Group{Title: panel.Title()})

			continue
		}

		if len(out) == 0 {
			out = append(out, Group{})
		}

		out[len(out)-1].Panels++
	}

	return out
}
