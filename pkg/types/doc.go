// Package types defines the record types for the nine generated tables,
// the generation configuration, enum value sets with their distribution
// weights, and standard errors shared across seedgen.
package types
