package spawn

// Handle tracks a spawned unit of work.
type Handle interface {
	// Join blocks until the unit has completed.
	Join()

	// IsRunning reports whether the unit is still executing.
	IsRunning() bool
}

// Spawner starts units of work. Implementations decide where the work
// runs; the sequence loop only relies on Spawn returning before the
// unit completes.
type Spawner interface {
	Spawn(fn func()) Handle
}

// Go is a Spawner that runs each unit on its own goroutine.
type Go struct{}

// Spawn starts fn on a new goroutine and returns its handle.
func (Go) Spawn(fn func()) Handle {
	h := &handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		fn()
	}()
	return h
}

type handle struct {
	done chan struct{}
}

func (h *handle) Join() {
	<-h.done
}

func (h *handle) IsRunning() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// JoinAll joins every handle in order.
func JoinAll(handles []Handle) {
	for _, h := range handles {
		h.Join()
	}
}

// Running filters handles down to the ones still executing.
func Running(handles []Handle) []Handle {
	out := handles[:0]
	for _, h := range handles {
		if h.IsRunning() {
			out = append(out, h)
		}
	}
	return out
}
