/*
Package observability provides lifecycle hooks for monitoring the clifford engine.

Metrics exports run, round and gate counters to Prometheus; LoggingHooks
writes the same events to a slog.Logger. Both return domain.LifecycleHooks,
so they compose with LifecycleHooks.Merge.
*/
package observability
