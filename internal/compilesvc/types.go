// Package compilesvc exposes the heavy-hex circuit compiler as an HTTP
// job API: a client posts a Request and gets back the finished job
// (circuit text and stats, or the compile error), which it can fetch
// again later by its ID.
package compilesvc

import (
	"time"

	"github.com/google/uuid"

	"github.com/chamberlandlab/heavyhex/internal/hhcompiler"
)

// JobStatus is the lifecycle state of one compile job.
type JobStatus string

const (
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// CompileJob is one compiler run and its outcome.
type CompileJob struct {
	JobID       uuid.UUID         `json:"job_id"`
	Request     hhcompiler.Request `json:"request"`
	Status      JobStatus         `json:"status"`
	Circuit     string            `json:"circuit,omitempty"`
	Stats       hhcompiler.Stats  `json:"stats,omitempty"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt time.Time         `json:"completed_at"`
}

// CircuitCreateRequest is the wire shape clients POST to request a
// circuit. Basis is a single-character string ("X" or "Z") rather than
// the internal Basis byte type, so the JSON stays legible.
type CircuitCreateRequest struct {
	Distance                      int     `json:"distance"`
	Rounds                        int     `json:"rounds"`
	Basis                         string  `json:"basis"`
	AfterCliffordDepolarization   float64 `json:"after_clifford_depolarization,omitempty"`
	AfterResetFlipProbability     float64 `json:"after_reset_flip_probability,omitempty"`
	BeforeMeasureFlipProbability  float64 `json:"before_measure_flip_probability,omitempty"`
	BeforeRoundDataDepolarization float64 `json:"before_round_data_depolarization,omitempty"`
}

func (r CircuitCreateRequest) toCompilerRequest() (hhcompiler.Request, error) {
	var basis hhcompiler.Basis
	switch r.Basis {
	case "X", "x":
		basis = hhcompiler.BasisX
	case "Z", "z":
		basis = hhcompiler.BasisZ
	default:
		basis = hhcompiler.Basis(0)
	}
	return hhcompiler.Request{
		Distance:                      r.Distance,
		Rounds:                        r.Rounds,
		Basis:                         basis,
		AfterCliffordDepolarization:   r.AfterCliffordDepolarization,
		AfterResetFlipProbability:     r.AfterResetFlipProbability,
		BeforeMeasureFlipProbability:  r.BeforeMeasureFlipProbability,
		BeforeRoundDataDepolarization: r.BeforeRoundDataDepolarization,
	}, nil
}

// CircuitResponse wraps a job for single-job JSON responses.
type CircuitResponse struct {
	Job   *CompileJob `json:"job"`
	Error string      `json:"error,omitempty"`
}
