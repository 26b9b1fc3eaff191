package dashboard

import "fmt"

// FindRow returns the index of the first row panel titled title.
func (d *Document) FindRow(title string) (int, error) {
	for i, p := range d.Panels {
		if p.IsRow() && p.Title() == title {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrAnchorNotFound, title)
}

// SectionEnd returns the index of the next row panel after rowIndex, or the
// length of the panel sequence when the section runs to the end.
func (d *Document) SectionEnd(rowIndex int) int {
	i := rowIndex + 1
	for i < len(d.Panels) && !d.Panels[i].IsRow() {
		i++
	}

	return i
}

// SectionBottom returns the first free grid line below the row at rowIndex and
// every panel in its section.
func (d *Document) SectionBottom(rowIndex int) (int, error) {
	row, ok := d.Panels[rowIndex].GridPos()
	if !ok {
		return 0, fmt.Errorf("%w: row %q has no grid position", ErrMalformed, d.Panels[rowIndex].Title())
	}

	bottom := row.Bottom()

	for _, p := range d.Panels[rowIndex+1 : d.SectionEnd(rowIndex)] {
		if g, ok := p.GridPos(); ok && g.Bottom() > bottom {
			bottom = g.Bottom()
		}
	}

	return bottom, nil
}

// FindByID returns the index of the top-level panel with the given ID. Panels
// tucked inside a collapsed row have no index of their own and are not found;
// IDs does see them, so an insertion reusing such an ID still fails.
func (d *Document) FindByID(id int) (int, bool) {
	for i, p := range d.Panels {
		if pid, ok := p.ID(); ok && pid == id {
			return i, true
		}
	}

	return -1, false
}

// IDs returns the set of panel IDs currently in use, including the panels of
// collapsed rows.
func (d *Document) IDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(d.Panels))

	for _, p := range d.Panels {
		if id, ok := p.ID(); ok {
			ids[id] = struct{}{}
		}

		for _, c := range p.Children() {
			if id, ok := c.ID(); ok {
				ids[id] = struct{}{}
			}
		}
	}

	return ids
}
