package compilesvc

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chamberlandlab/heavyhex/internal/circuitir"
	"github.com/chamberlandlab/heavyhex/internal/hhcompiler"
)

// Manager owns the in-memory job store. Compilation is a pure,
// CPU-bound function of its Request, so CreateJob runs it synchronously
// before taking the lock rather than dispatching to a worker, and locks
// only to store the finished record; the job record
// still exists so the HTTP layer has a stable ID to hand back to
// clients and a uniform place to report either outcome.
type Manager struct {
	mutex sync.RWMutex
	jobs  map[uuid.UUID]*CompileJob
}

// NewManager returns an empty job store.
func NewManager() *Manager {
	return &Manager{jobs: make(map[uuid.UUID]*CompileJob)}
}

// CreateJob compiles req, records the job under a fresh UUID regardless
// of whether compilation succeeded, and returns it.
func (m *Manager) CreateJob(req hhcompiler.Request) *CompileJob {
	job := &CompileJob{
		JobID:     uuid.New(),
		Request:   req,
		CreatedAt: time.Now(),
	}

	circuit, stats, err := hhcompiler.Compile(req)
	job.CompletedAt = time.Now()
	if err != nil {
		job.Status = JobFailed
		job.Error = err.Error()
	} else {
		job.Status = JobCompleted
		job.Circuit = circuit
		job.Stats = stats
		job.Fingerprint = circuitir.Fingerprint(circuit)
	}

	m.mutex.Lock()
	m.jobs[job.JobID] = job
	m.mutex.Unlock()

	return job
}

// GetJob looks up a job by ID.
func (m *Manager) GetJob(id uuid.UUID) (*CompileJob, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	job, ok := m.jobs[id]
	return job, ok
}

// Len reports how many jobs have been recorded, for health/metrics
// reporting.
func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.jobs)
}
