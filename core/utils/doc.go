// Package utils provides small helpers shared by the HTTP and CLI entry points,
// such as limit/offset parsing and validation.
package utils
