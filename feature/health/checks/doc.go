// Package checks contains the schema inspection used by the health feature.
package checks
