/*
Package domain contains the core models of the stencil skeleton.

It defines the fixed sequence of steps, the capability set a variant must
satisfy, and the events emitted while the skeleton runs. The package is
pure: it performs no I/O and holds no mutable state.

# Key Entities

  - Step: one position in the skeleton (base, required or hook).
  - Variant: the mandatory extension contract (two required operations).
  - Hook1er / Hook2er: optional extension points, no-op when absent.
  - Emitter: the sink a step writes its text to.
  - LifecycleHooks: observability callbacks fired around every step.
*/
package domain
