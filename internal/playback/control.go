package playback

// Control is a fixed transport button. It holds at most one binding at a
// time; binding a new action replaces the previous one in a single step.
type Control struct {
	name   string
	action func()
}

// NewControl creates an unbound control.
func NewControl(name string) *Control {
	return &Control{name: name}
}

// Name returns the control name.
func (c *Control) Name() string { return c.name }

// Bind attaches fn (nil unbinds) and returns the previously bound action.
func (c *Control) Bind(fn func()) (previous func()) {
	previous = c.action
	c.action = fn
	return previous
}

// Bound reports whether an action is attached.
func (c *Control) Bound() bool { return c.action != nil }

// Click runs the bound action. Returns false when nothing is bound.
func (c *Control) Click() bool {
	if c.action == nil {
		return false
	}
	c.action()
	return true
}
