//go:build !windows && !darwin

package platform

const foldPaths = false
