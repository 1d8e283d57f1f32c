/*
Package runner drives the stencil demonstration.

A Runner takes a sequence of variants and, for each one, announces it,
invokes the same client code and separates it from the next. Output goes
through a Handler: TextHandler reproduces the classic console output,
JSONHandler emits one NDJSON object per line for machine consumption.
*/
package runner
