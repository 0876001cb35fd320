//go:build !cgo

package main

// main stands in for the one in bridge.go when cgo is disabled and that file is excluded.
func main() {}
