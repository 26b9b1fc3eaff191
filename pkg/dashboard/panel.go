package dashboard

// TypeRow is the panel type of a section divider.
const TypeRow = "row"

// rowHeight is the grid height Grafana assigns to a row divider.
const rowHeight = 1

// Panel is one dashboard tile. It is kept as a generic JSON object so fields
// this tool does not know about survive a rewrite.
type Panel map[string]any

// GridPos is a panel's layout rectangle in dashboard grid units.
type GridPos struct {
	X int
	Y int
	W int
	H int
}

// Bottom returns the first grid line below the rectangle.
func (g GridPos) Bottom() int {
	return g.Y + g.H
}

// Map converts the rectangle to its JSON form.
func (g GridPos) Map() map[string]any {
	return map[string]any{"h": g.H, "w": g.W, "x": g.X, "y": g.Y}
}

// ID returns the numeric panel ID.
func (p Panel) ID() (int, bool) {
	return toInt(p["id"])
}

// Type returns the panel kind tag.
func (p Panel) Type() string {
	t, _ := p["type"].(string)

	return t
}

// Title returns the panel title.
func (p Panel) Title() string {
	t, _ := p["title"].(string)

	return t
}

// IsRow reports whether the panel is a section divider.
func (p Panel) IsRow() bool {
	return p.Type() == TypeRow
}

// GridPos returns the panel's layout rectangle. Missing width and height
// default to zero, except for rows which always occupy at least one grid line.
func (p Panel) GridPos() (GridPos, bool) {
	raw, ok := p["gridPos"].(map[string]any)
	if !ok {
		return GridPos{}, false
	}

	y, ok := toInt(raw["y"])
	if !ok {
		return GridPos{}, false
	}

	x, _ := toInt(raw["x"])
	w, _ := toInt(raw["w"])

	h, _ := toInt(raw["h"])
	if p.IsRow() && h < rowHeight {
		h = rowHeight
	}

	return GridPos{X: x, Y: y, W: w, H: h}, true
}

// Children returns the panels stored inside a collapsed row.
func (p Panel) Children() []Panel {
	list, _ := p["panels"].([]any)

	out := make([]Panel, 0, len(list))

	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Panel(obj))
		}
	}

	return out
}

// SetGridPos replaces the panel's layout rectangle.
func (p Panel) SetGridPos(g GridPos) {
	p["gridPos"] = g.Map()
}

// shiftY moves the panel down by delta rows, leaving every other grid field
// untouched. Panels without a grid position are left alone.
func (p Panel) shiftY(delta int) bool {
	raw, ok := p["gridPos"].(map[string]any)
	if !ok {
		return false
	}

	y, ok := toInt(raw["y"])
	if !ok {
		return false
	}

	raw["y"] = y + delta

	return true
}

// toInt accepts the numeric forms a decoded or freshly built panel may hold.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case interface{ Int64() (int64, error) }:
		i, err := n.Int64()
		if err == nil {
			return int(i), true
		}

		if f, ok := v.(interface{ Float64() (float64, error) }); ok {
			if fv, ferr := f.Float64(); ferr == nil {
				return int(fv), true
			}
		}

		return 0, false
	default:
		return 0, false
	}
}
