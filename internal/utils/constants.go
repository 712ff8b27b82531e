package utils

import "time"

// =============================================================================
// Timeout Constants
// =============================================================================

const (
	// DefaultRequestTimeout is the default timeout for HTTP requests
	DefaultRequestTimeout = 30 * time.Second

	// AnalysisTimeout bounds a single engine run kicked off by a handler
	// or stream worker. A year of daily points analyzes in well under a
	// second; this is a safety net only.
	AnalysisTimeout = 10 * time.Second

	// PublishTimeout bounds publishing one report to the queue
	PublishTimeout = 10 * time.Second

	// ShutdownTimeout is the grace period for draining on SIGTERM
	ShutdownTimeout = 15 * time.Second
)

// =============================================================================
// Batch Constants
// =============================================================================

const (
	// MaxObservationsPerRequest caps the record count a single API call
	// or stream batch may carry
	MaxObservationsPerRequest = 100000

	// DefaultStreamWorkers is the fallback worker count for the stream
	// worker pool when configuration leaves it unset
	DefaultStreamWorkers = 4
)

// =============================================================================
// Queue Type Constants
// =============================================================================

// QueueType represents the type of message queue
type QueueType string

const (
	// QueueTypeNATS represents NATS JetStream queue (default)
	QueueTypeNATS QueueType = "nats"

	// QueueTypeRedis represents Redis Streams queue
	QueueTypeRedis QueueType = "redis"

	// QueueTypeKafka represents Apache Kafka queue
	QueueTypeKafka QueueType = "kafka"

	// QueueTypeMemory represents in-memory queue (for testing)
	QueueTypeMemory QueueType = "memory"
)
