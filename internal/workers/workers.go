package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers for a single Run call.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
