// Package libdiff compares forests of trees by diffing their indented
// renderings line by line.
package libdiff
