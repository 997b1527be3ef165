// Package magetasks provides the build, test and lint tasks behind the
// cardfit Magefile.
package magetasks
