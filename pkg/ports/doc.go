/*
Package ports defines the driven ports (interfaces) for the clifford engine.

These interfaces decouple sampling from persistence so the same engine can
keep runs in memory, on disk or in Redis.

# Key Interfaces

  - RunStore: persists finished runs (rows, circuit, round boundaries) by ID.
*/
package ports
