package dashboard

import (
	"fmt"
	"sort"
)

// Issue kinds reported by Validate.
const (
	IssueDuplicateID = "duplicate-id"
	IssueOverlap     = "overlap"
)

// Issue is a layout or identity problem found in a dashboard.
type Issue struct {
	Kind    string
	IDs     []int
	Message string
}

// Validate checks that panel IDs are unique and that no two panels occupy
// the same grid cells.
func (d *Document) Validate() []Issue {
	issues := make([]Issue, 0)

	seen := make(map[int][]string, len(d.Panels))
	order := make([]int, 0, len(d.Panels))

	for _, top := range d.Panels {
		for _, p := range append([]Panel{top}, top.Children()...) {
			id, ok := p.ID()
			if !ok {
				continue
			}

			if _, exists := seen[id]; !exists {
				order = append(order, id)
			}

			seen[id] = append(seen[id], p.Title())
		}
	}

	for _, id := range order {
		if titles := seen[id]; len(titles) > 1 {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateID,
				IDs:     []int{id},
				Message: fmt.Sprintf("panel id %d used %d times (%v)", id, len(titles), titles),
			})
		}
	}

	type placed struct {
		id  int
		pos GridPos
	}

	boxes := make([]placed, 0, len(d.Panels))

	for _, p := range d.Panels {
		g, ok := p.GridPos()
		if !ok {
			continue
		}

		if p.IsRow() && g.W == 0 {
			g.W = gridWidth
		}

		id, _ := p.ID()
		boxes = append(boxes, placed{id: id, pos: g})
	}

	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].pos.Y < boxes[j].pos.Y })

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if b.pos.Y >= a.pos.Bottom() {
				break
			}

			if overlaps(a.pos, b.pos) {
				issues = append(issues, Issue{
					Kind: IssueOverlap,
					IDs:  []int{a.id, b.id},
					Message: fmt.Sprintf("panels %d (y=%d h=%d) and %d (y=%d h=%d) overlap",
						a.id, a.pos.Y, a.pos.H, b.id, b.pos.Y, b.pos.H),
				})
			}
		}
	}

	return issues
}

// gridWidth is the number of columns in a Grafana dashboard grid.
const gridWidth = 24

func overlaps(a, b GridPos) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Bottom() && b.Y < a.Bottom()
}
