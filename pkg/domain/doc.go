/*
Package domain contains the records and events the clifford engine hands to
its adapters.

It is kept free of I/O: stores, transports and metrics live in adapters and
only exchange these types.

# Key Entities

  - Run: a finished sampling or canonicalization, with its rows, gates and
    round boundaries. This is what stores persist and servers return.
  - RunEvent / RoundEvent: lifecycle notifications for observability.
  - LifecycleHooks: optional callbacks the engine invokes.
*/
package domain
