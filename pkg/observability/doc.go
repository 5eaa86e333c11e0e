/*
Package observability provides Prometheus instrumentation for the chomsky
toolkit.

Metrics are registered on a caller-supplied prometheus.Registerer so tests
and embedders can keep them isolated from the default registry.
*/
package observability
