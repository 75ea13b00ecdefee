package entity

// SyncOutcome is the typed per-record result of one push. AlreadyExists
// is its own category: neither a success nor a failure.
type SyncOutcome string

const (
	SyncCreated       SyncOutcome = "created"
	SyncAlreadyExists SyncOutcome = "already_exists"
	SyncAuthRequired  SyncOutcome = "auth_required"
	SyncFailed        SyncOutcome = "failed"
)

func (o SyncOutcome) String() string {
	return string(o)
}

// RecordResult ties one record id to its outcome.
type RecordResult struct {
	ID      string      `json:"id"`
	Outcome SyncOutcome `json:"outcome"`
	Detail  string      `json:"detail,omitempty"`
}

// SyncResult aggregates outcomes for one collection batch.
type SyncResult struct {
	Collection    string         `json:"collection"`
	Created       int            `json:"created"`
	AlreadyExists int            `json:"already_exists"`
	AuthRequired  int            `json:"auth_required"`
	Failed        int            `json:"failed"`
	Records       []RecordResult `json:"records,omitempty"`
}

func (r *SyncResult) Add(record RecordResult) {
	switch record.Outcome {
	case SyncCreated:
		r.Created++
	case SyncAlreadyExists:
		r.AlreadyExists++
	case SyncAuthRequired:
		r.AuthRequired++
	case SyncFailed:
		r.Failed++
	}

	r.Records = append(r.Records, record)
}

// Total counts every record seen, whatever the outcome.
func (r SyncResult) Total() int {
	return r.Created + r.AlreadyExists + r.AuthRequired + r.Failed
}
