package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // accepted by the queue, not started
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // artifacts written (possibly none)
	JobStatusFailed    JobStatus = "FAILED"    // session failure
)

var allJobStatuses = []JobStatus{
	JobStatusQueued,
	JobStatusRunning,
	JobStatusSucceeded,
	JobStatusFailed,
}

func JobStatusesAsStringSlice() []string {
	result := make([]string, len(allJobStatuses))
	for i, s := range allJobStatuses {
		result[i] = string(s)
	}
	return result
}
