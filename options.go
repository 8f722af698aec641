package cozyui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptDetent = cozyui.NewOptKey[float32]("detent", 0)
//
//	// Set options
//	ctx.MyKnob("gain", cozyui.WithOpt(OptDetent, 0.5))
//
//	// Read in widget implementation
//	detent := cozyui.ApplyAndGet(opts, OptDetent)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptID     = NewOptKey("id", "")
	OptWidth  = NewOptKey[float32]("width", 0)
	OptHeight = NewOptKey[float32]("height", 0)
)

// --- Parameter widget Options ---
var (
	OptLabel       = NewOptKey("label", "")
	OptDescription = NewOptKey("description", "")
	OptDefault     = NewOptKey[float32]("default", 0)   // Only used when set
	OptModulated   = NewOptKey[float32]("modulated", 0) // Only used when set
	OptBeginSet    = NewOptKey[func()]("beginSet", nil)
	OptEndSet      = NewOptKey[func()]("endSet", nil)
	OptSmall       = NewOptKey("small", false)
)

// --- CollapsingHeader Options ---
var (
	OptDefaultOpen = NewOptKey("defaultOpen", false)
)

// --- Graph Options ---
var (
	OptGraphYMin      = NewOptKey[float32]("graphYMin", 0)
	OptGraphYMax      = NewOptKey[float32]("graphYMax", 0)
	OptGraphGridLines = NewOptKey("graphGridLines", 0)
	OptGraphLegend    = NewOptKey("graphLegend", false)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithLabel sets the text drawn under a knob.
func WithLabel(label string) Option { return WithOpt(OptLabel, label) }

// WithDescription sets flavour text shown in a tooltip while the widget is
// hovered. Newlines start new tooltip lines.
func WithDescription(text string) Option { return WithOpt(OptDescription, text) }

// WithDefault sets the value a double-click resets to.
func WithDefault(v float32) Option { return WithOpt(OptDefault, v) }

// WithModulated draws a modulation arc from the knob's value to v.
func WithModulated(v float32) Option { return WithOpt(OptModulated, v) }

// WithBeginSet registers a callback run before the first write of a gesture,
// for hosts that group parameter changes for automation and undo.
func WithBeginSet(fn func()) Option { return WithOpt(OptBeginSet, fn) }

// WithEndSet registers a callback run after the last write of a gesture.
func WithEndSet(fn func()) Option { return WithOpt(OptEndSet, fn) }

// WithSmall drops the vertical padding of a toggle.
func WithSmall() Option { return WithOpt(OptSmall, true) }

// DefaultOpen makes a collapsing header start expanded.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithGraphYRange sets the Y-axis range for graphs.
func WithGraphYRange(minVal, maxVal float32) Option {
	return func(o *options) {
		WithOpt(OptGraphYMin, minVal)(o)
		WithOpt(OptGraphYMax, maxVal)(o)
	}
}

// WithGraphGridLines sets the number of horizontal grid lines.
func WithGraphGridLines(n int) Option { return WithOpt(OptGraphGridLines, n) }

// WithGraphLegend enables the legend for graphs.
func WithGraphLegend() Option { return WithOpt(OptGraphLegend, true) }
