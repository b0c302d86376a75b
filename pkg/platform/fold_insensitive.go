//go:build windows || darwin

package platform

const foldPaths = true
