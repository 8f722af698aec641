package cozyui

// Operation is a request passed to a GetSet: either read the value or write
// it.
type Operation[T any] struct {
	value T
	set   bool
}

// GetOp returns a read request.
func GetOp[T any]() Operation[T] {
	return Operation[T]{}
}

// SetOp returns a write request carrying v.
func SetOp[T any](v T) Operation[T] {
	return Operation[T]{value: v, set: true}
}

// OperationFrom turns an optional value into an Operation: nil reads, non-nil
// writes *v.
func OperationFrom[T any](v *T) Operation[T] {
	if v == nil {
		return GetOp[T]()
	}
	return SetOp(*v)
}

// IsSet reports whether the operation is a write.
func (op Operation[T]) IsSet() bool { return op.set }

// Value returns the value to write. It is the zero value for reads.
func (op Operation[T]) Value() T { return op.value }

// GetSet binds a widget to a value it does not own. Every call returns the
// current value; a write request stores the new value first.
type GetSet[T any] func(Operation[T]) T

// Bind returns a GetSet backed by a variable.
func Bind[T any](ptr *T) GetSet[T] {
	return func(op Operation[T]) T {
		if op.set {
			*ptr = op.value
		}
		return *ptr
	}
}

// BindFuncs returns a GetSet backed by a getter and a setter, for values
// that live behind an accessor such as a plugin parameter.
func BindFuncs[T any](get func() T, set func(T)) GetSet[T] {
	return func(op Operation[T]) T {
		if op.set {
			set(op.value)
		}
		return get()
	}
}

// Get reads the bound value.
func (gs GetSet[T]) Get() T {
	return gs(GetOp[T]())
}

// Set writes the bound value and returns what the binding reports afterwards.
func (gs GetSet[T]) Set(v T) T {
	return gs(SetOp(v))
}

// gesture brackets a run of writes with the widget's begin and end callbacks
// so a host can group them into one undo step or automation pass.
type gesture struct {
	id         ID
	begin, end func()
}

func newGesture(id ID, o options) gesture {
	return gesture{id: id, begin: GetOpt(o, OptBeginSet), end: GetOpt(o, OptEndSet)}
}

func (g gesture) Begin() {
	guiLogger.Debug("gesture begin", "id", g.id)
	if g.begin != nil {
		g.begin()
	}
}

func (g gesture) End() {
	guiLogger.Debug("gesture end", "id", g.id)
	if g.end != nil {
		g.end()
	}
}

// Once runs fn inside a complete gesture.
func (g gesture) Once(fn func()) {
	g.Begin()
	fn()
	g.End()
}
