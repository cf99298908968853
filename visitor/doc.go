// Package visitor offers callback visitors over plain-value containers.
// It iterates sequences (slices and arrays), string-keyed mappings and sets
// with fast paths for common element types and a reflection fallback.
package visitor
