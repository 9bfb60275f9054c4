// Package types defines the entity types, category and status enums,
// platform constants, sentinel errors, and configuration for the medex
// settlement engine.
package types
