// Package kernel contains shared value objects used across domain aggregates.
//
// The kernel follows Domain-Driven Design principles where value objects are
// immutable, validated at construction, and compared by value. The zero value of
// every kernel type is invalid; instances must be obtained through the provided
// factory functions.
package kernel
