package googlecalendar

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс сборщика метрик интеграции.
// Реализуется pkg/metrics.Metrics; в тестах и при выключенных метриках — nil.
type MetricsObserver interface {
	ObserveIntegrationRequest(integration, operation, status string, seconds float64)
}
