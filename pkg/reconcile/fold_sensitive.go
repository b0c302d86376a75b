//go:build !windows && !darwin

package reconcile

const caseInsensitiveFS = false
