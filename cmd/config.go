package cmd

// Config holds the runtime settings of the fulfillment service.
// Kafka settings are optional; with no brokers configured the service runs
// without event publishing.
type Config struct {
	HTTPPort              string
	KafkaBrokers          string
	KafkaOrderEventsTopic string
}
