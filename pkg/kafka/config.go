// Package kafka wraps segmentio/kafka-go with the producer and consumer
// conventions used across the CIBIL service: keyed messages with string
// headers, SASL/TLS-capable dialers, and commit-after-handle consumption.
package kafka

// Config holds Kafka connection parameters.
type Config struct {
	ConsumerGroup string

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables TLS for Kafka connections.
	TLS         bool
	SASLEnabled bool
}
