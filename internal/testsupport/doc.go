// Package testsupport builds small but structurally valid audio fixtures
// for tests. Nothing here is used by production code.
package testsupport
