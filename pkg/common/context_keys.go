package common

type contextKey string

const (
	TraceIdKey        contextKey = "trace_id"
	TerminateQueueKey contextKey = "terminate_queue"
)
