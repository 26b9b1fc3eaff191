package panels

import (
	"github.com/ethpandaops/dashpatch/pkg/dashboard"
)

// Layout composes a block of panels top to bottom, handing out sequential
// panel IDs. Rectangles passed to the placement methods are relative to the
// current band; Advance moves the band down. The block starts at y=0.
type Layout struct {
	ds     Datasource
	nextID int
	y      int
	panels []dashboard.Panel
}

// NewLayout returns a layout whose first panel gets firstID.
func NewLayout(ds Datasource, firstID int) *Layout {
	return &Layout{
		ds:     ds,
		nextID: firstID,
		panels: make([]dashboard.Panel, 0, 32),
	}
}

// Row adds a section divider and moves the band below it.
func (l *Layout) Row(title string) dashboard.Panel {
	p := Row(l.id(), title, l.y)
	l.panels = append(l.panels, p)
	l.y++

	return p
}

// TimeSeries places a time-series graph in the current band.
func (l *Layout) TimeSeries(rect dashboard.GridPos, opts TimeSeriesOptions) dashboard.Panel {
	return l.add(TimeSeries(l.ds, l.id(), l.abs(rect), opts))
}

// Stat places a stat panel in the current band.
func (l *Layout) Stat(rect dashboard.GridPos, opts StatOptions) dashboard.Panel {
	return l.add(Stat(l.ds, l.id(), l.abs(rect), opts))
}

// Gauge places a gauge in the current band.
func (l *Layout) Gauge(rect dashboard.GridPos, opts GaugeOptions) dashboard.Panel {
	return l.add(Gauge(l.ds, l.id(), l.abs(rect), opts))
}

// Advance moves the band down by h grid rows.
func (l *Layout) Advance(h int) {
	l.y += h
}

// Panels returns the placed panels in insertion order.
func (l *Layout) Panels() []dashboard.Panel {
	return l.panels
}

// NextID returns the ID the next placed panel will receive.
func (l *Layout) NextID() int {
	return l.nextID
}

func (l *Layout) id() int {
	id := l.nextID
	l.nextID++

	return id
}

func (l *Layout) abs(rect dashboard.GridPos) dashboard.GridPos {
	rect.Y += l.y

	return rect
}

func (l *Layout) add(p dashboard.Panel) dashboard.Panel {
	l.panels = append(l.panels, p)

	return p
}
