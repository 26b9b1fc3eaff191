package dashboard

import "fmt"

// BlockHeight returns the number of grid rows a block of panels occupies,
// measured from its topmost edge to its lowest bottom edge.
func BlockHeight(block []Panel) int {
	var (
		top, bottom int
		seen        bool
	)

	for _, p := range block {
		g, ok := p.GridPos()
		if !ok {
			continue
		}

		if !seen || g.Y < top {
			top = g.Y
		}

		if !seen || g.Bottom() > bottom {
			bottom = g.Bottom()
		}

		seen = true
	}

	if !seen {
		return 0
	}

	return bottom - top
}

// InsertBlock splices block into the panel sequence at index. The block is
// laid out relative to y=0 and is moved down to baseY; every panel already at
// or after index is pushed down by the block height. It returns that height.
// Nothing is modified when an error is returned.
func (d *Document) InsertBlock(index, baseY int, block []Panel) (int, error) {
	if index < 0 || index > len(d.Panels) {
		return 0, fmt.Errorf("insertion index %d out of range [0,%d]", index, len(d.Panels))
	}

	if err := d.checkIDs(block); err != nil {
		return 0, err
	}

	height := BlockHeight(block)

	for _, p := range d.Panels[index:] {
		p.shiftY(height)
	}

	top := blockTop(block)
	for _, p := range block {
		p.shiftY(baseY - top)
	}

	panels := make([]Panel, 0, len(d.Panels)+len(block))
	panels = append(panels, d.Panels[:index]...)
	panels = append(panels, block...)
	panels = append(panels, d.Panels[index:]...)
	d.Panels = panels

	return height, nil
}

// checkIDs rejects block panels whose IDs are already used by the document or
// repeated inside the block.
func (d *Document) checkIDs(block []Panel) error {
	used := d.IDs()

	for _, p := range block {
		id, ok := p.ID()
		if !ok {
			continue
		}

		if _, dup := used[id]; dup {
			return fmt.Errorf("%w: %d (%s)", ErrDuplicateID, id, p.Title())
		}

		used[id] = struct{}{}
	}

	return nil
}

// blockTop returns the smallest y in the block, or 0.
func blockTop(block []Panel) int {
	top, seen := 0, false

	for _, p := range block {
		if g, ok := p.GridPos(); ok && (!seen || g.Y < top) {
			top, seen = g.Y, true
		}
	}

	return top
}
