package overlay

// Options configures the overlay at startup.
type Options struct {
	// Enabled turns the whole overlay on or off.
	Enabled bool
	// Global draws every collider. When false only colliders whose
	// entity is in the visible set are drawn.
	Global bool
	// Style controls default coloring and shape detail.
	Style Style
	// Mode selects which scene categories are rendered.
	Mode Mode
}

// DefaultOptions enables the overlay for every collider with every
// category rendered.
func DefaultOptions() Options {
	return Options{
		Enabled: true,
		Global:  true,
		Style:   DefaultStyle(),
		Mode:    ModeAll,
	}
}

// Disabled returns the options with the overlay initially off.
func (o Options) Disabled() Options {
	o.Enabled = false
	return o
}

// Context is the process-wide overlay state. It is created once and its
// fields may be mutated between frames (by the host or by tooling); it
// must not be mutated concurrently with a running frame pass, which
// briefly rewrites Style.RigidBodyAxesLength.
type Context struct {
	Enabled bool
	Global  bool
	Style   Style
	Mode    Mode
}

// NewContext materializes the overlay state from startup options.
func NewContext(opts Options) *Context {
	return &Context{
		Enabled: opts.Enabled,
		Global:  opts.Global,
		Style:   opts.Style,
		Mode:    opts.Mode,
	}
}
