package prometheus

// AppMetrics holds every metric emitted by the service, grouped by layer.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Classification
	ClassificationsTotal   CounterVec
	ClassificationDuration HistogramVec

	// External sources
	SourceCallsTotal    CounterVec
	SourceCallDuration  HistogramVec
	SourceRetriesTotal  CounterVec
	SourceFailuresTotal CounterVec

	// Seeder
	SeederRecordsProcessed  CounterVec
	SeederRecordsInserted   CounterVec
	SeederDuplicatesSkipped CounterVec
	SeederErrorsTotal       CounterVec
	SeederActiveWorkers     GaugeVec

	// Infrastructure
	DBQueryDuration  HistogramVec
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
}

// Default histogram buckets.
var (
	DefaultHTTPDurationBuckets   = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultSourceDurationBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
	DefaultDBDurationBuckets     = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
)

// NewAppMetrics registers all service metrics and returns the populated
// AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")

	// Classification
	m.ClassificationsTotal = collector.RegisterCounter("classifications_total", "Query classifications by resulting kind and deciding layer", "kind", "layer")
	m.ClassificationDuration = collector.RegisterHistogram("classification_duration_seconds", "Classification duration", DefaultSourceDurationBuckets, "kind")

	// Sources
	m.SourceCallsTotal = collector.RegisterCounter("source_calls_total", "External source calls", "source", "operation", "outcome")
	m.SourceCallDuration = collector.RegisterHistogram("source_call_duration_seconds", "External source call duration", DefaultSourceDurationBuckets, "source", "operation")
	m.SourceRetriesTotal = collector.RegisterCounter("source_retries_total", "External source retry attempts", "source", "operation")
	m.SourceFailuresTotal = collector.RegisterCounter("source_failures_total", "External source terminal failures", "source", "code")

	// Seeder
	m.SeederRecordsProcessed = collector.RegisterCounter("seeder_records_processed_total", "Seeder records processed", "source")
	m.SeederRecordsInserted = collector.RegisterCounter("seeder_records_inserted_total", "Seeder records inserted", "source")
	m.SeederDuplicatesSkipped = collector.RegisterCounter("seeder_duplicates_skipped_total", "Seeder duplicate records skipped", "source")
	m.SeederErrorsTotal = collector.RegisterCounter("seeder_errors_total", "Seeder per-record errors", "source")
	m.SeederActiveWorkers = collector.RegisterGauge("seeder_active_workers", "Active seeder enrichment workers")

	// Infrastructure
	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "repository", "operation")
	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Response cache hits", "endpoint")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Response cache misses", "endpoint")

	return m
}
