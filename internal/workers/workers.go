package workers

// Workers starts the background parts of the client (the crypto pool, the
// metrics endpoint) in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. Nil entries are skipped so optional parts can be
// passed unconditionally.
func NewWorkers(workers ...Worker) *Workers {
	ws := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if w != nil {
			ws = append(ws, w)
		}
	}
	return &Workers{workers: ws}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
