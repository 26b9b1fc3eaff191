package dashboard

import "fmt"

// OutcomeKind tells whether an upsert added a panel or refreshed one.
type OutcomeKind int

const (
	// Inserted means the panel was new and the layout below it was shifted.
	Inserted OutcomeKind = iota
	// Updated means a panel with the reserved ID existed and was replaced in place.
	Updated
)

// String implements fmt.Stringer.
func (k OutcomeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Singleton describes a panel identified by a reserved ID that is placed
// directly below an anchor row.
type Singleton struct {
	// ID is the reserved panel ID used to detect a previous insertion.
	ID int
	// Anchor is the title of the row the panel belongs under.
	Anchor string
	// Rect gives x, width and height for a fresh insertion; y is computed.
	Rect GridPos
	// Build returns a fresh panel record placed at the given rectangle.
	Build func(GridPos) Panel
}

// Outcome reports what Upsert did.
type Outcome struct {
	Kind    OutcomeKind
	Index   int
	GridPos GridPos
	// Shift is how far downstream panels were moved; zero for updates.
	Shift int
}

// Upsert inserts the singleton panel below its anchor row, or replaces an
// existing panel carrying the reserved ID while keeping its grid position.
// Running it repeatedly yields the same document as running it once.
func (d *Document) Upsert(s Singleton) (Outcome, error) {
	rowIndex, err := d.FindRow(s.Anchor)
	if err != nil {
		return Outcome{}, err
	}

	if i, found := d.FindByID(s.ID); found {
		pos, ok := d.Panels[i].GridPos()
		if !ok {
			return Outcome{}, fmt.Errorf("%w: panel %d has no grid position", ErrMalformed, s.ID)
		}

		d.Panels[i] = d.build(s, pos)

		return Outcome{Kind: Updated, Index: i, GridPos: pos}, nil
	}

	row, ok := d.Panels[rowIndex].GridPos()
	if !ok {
		return Outcome{}, fmt.Errorf("%w: row %q has no grid position", ErrMalformed, s.Anchor)
	}

	rel := s.Rect
	rel.Y = 0

	panel := d.build(s, rel)
	index := rowIndex + 1

	shift, err := d.InsertBlock(index, row.Bottom(), []Panel{panel})
	if err != nil {
		return Outcome{}, err
	}

	pos, _ := panel.GridPos()

	return Outcome{Kind: Inserted, Index: index, GridPos: pos, Shift: shift}, nil
}

func (d *Document) build(s Singleton, pos GridPos) Panel {
	p := s.Build(pos)
	p["id"] = s.ID
	p.SetGridPos(pos)

	return p
}
