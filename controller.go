package scratch

// Controller is an optional external handle onto a Surface with attach and
// detach semantics. The controller does not own the surface; it may outlive
// it or be created before it. Every operation degrades to a safe default
// when detached: mutations become no-ops and reads return zero values,
// never an error.
type Controller struct {
	surface *Surface
}

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{}
}

// Attach points the controller at a surface, replacing any previous
// attachment.
func (c *Controller) Attach(s *Surface) {
	c.surface = s
}

// Detach drops the surface reference. Call this when the widget owning the
// surface is torn down; subsequent controller calls are no-ops.
func (c *Controller) Detach() {
	c.surface = nil
}

// Attached reports whether the controller currently references a surface.
func (c *Controller) Attached() bool {
	return c.surface != nil
}

// Reveal forces the attached surface into the revealed state.
func (c *Controller) Reveal() {
	if c.surface != nil {
		c.surface.Reveal()
	}
}

// Unreveal brings the attached surface's overlay back.
func (c *Controller) Unreveal() {
	if c.surface != nil {
		c.surface.Unreveal()
	}
}

// Reset returns the attached surface to Idle.
func (c *Controller) Reset() {
	if c.surface != nil {
		c.surface.Reset()
	}
}

// Progress returns the attached surface's progress, or 0 when detached.
func (c *Controller) Progress() float64 {
	if c.surface == nil {
		return 0
	}
	return c.surface.Progress()
}

// IsRevealed reports the attached surface's revealed flag, or false when
// detached.
func (c *Controller) IsRevealed() bool {
	if c.surface == nil {
		return false
	}
	return c.surface.Revealed()
}
