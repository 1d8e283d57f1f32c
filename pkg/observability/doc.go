/*
Package observability provides tools for monitoring the stencil skeleton.

Metrics exposes Prometheus counters fed by the skeleton's lifecycle hooks:
one increment per executed step (labelled by step, kind, variant and whether
a hook was overridden), one per run, and a count of emitted lines.
*/
package observability
