package table

// Indicator is the visual state of a column header.
type Indicator int

const (
	Neutral Indicator = iota
	AscendingActive
	DescendingActive
)

// Glyph returns the symbol drawn next to a sortable header.
func (i Indicator) Glyph() string {
	switch i {
	case AscendingActive:
		return "▲"
	case DescendingActive:
		return "▼"
	default:
		return "↕"
	}
}

// Sorter is what header cells need from a controller.
type Sorter interface {
	RequestSort(key string)
	Indicator(key string) Indicator
}

// Controller coordinates sort state between header cells and the owner of
// the data. It never sorts the data itself; callers apply Sort with the
// descriptors they receive through the change callback.
//
// In controlled mode the descriptor lives with the caller and is only read
// here. In uncontrolled mode the controller owns it.
type Controller struct {
	data     []Record
	onChange func(Descriptor)

	external *Descriptor // non-nil: controlled
	current  Descriptor
}

// Option configures a Controller at construction.
type Option func(*controllerOptions)

type controllerOptions struct {
	initial  Descriptor
	external *Descriptor
}

// WithDefault sets the initial descriptor of an uncontrolled controller.
func WithDefault(key string, dir Direction) Option {
	return func(o *controllerOptions) { o.initial = Descriptor{Key: key, Direction: dir} }
}

// WithExternal makes the controller controlled by the descriptor d points
// to. The caller keeps write ownership; a nil pointer is ignored.
func WithExternal(d *Descriptor) Option {
	return func(o *controllerOptions) { o.external = d }
}

// New builds a controller. data is informational only. onChange may be nil.
func New(data []Record, onChange func(Descriptor), opts ...Option) *Controller {
	var o controllerOptions
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{data: data, onChange: onChange}
	if o.external != nil {
		c.external = o.external
	} else {
		c.current = o.initial
	}
	return c
}

// Controlled reports whether the descriptor is owned by the caller.
func (c *Controller) Controlled() bool { return c.external != nil }

// Descriptor returns the authoritative descriptor for the current mode.
func (c *Controller) Descriptor() Descriptor {
	if c.external != nil {
		return *c.external
	}
	return c.current
}

// Data returns the records the controller was given.
func (c *Controller) Data() []Record { return c.data }

// SetData replaces the informational record set.
func (c *Controller) SetData(data []Record) { c.data = data }

// RequestSort toggles ascending -> descending on the active column and
// starts every other column ascending. The new descriptor is always handed
// to the change callback; it is stored locally only when uncontrolled.
func (c *Controller) RequestSort(key string) {
	cur := c.Descriptor()
	dir := Ascending
	if cur.Key == key && cur.Direction == Ascending {
		dir = Descending
	}
	next := Descriptor{Key: key, Direction: dir}
	if c.external == nil {
		c.current = next
	}
	if c.onChange != nil {
		c.onChange(next)
	}
}

// Indicator returns the header state for key.
func (c *Controller) Indicator(key string) Indicator {
	d := c.Descriptor()
	if !d.IsSet() || d.Key != key {
		return Neutral
	}
	if d.Direction == Descending {
		return DescendingActive
	}
	return AscendingActive
}
