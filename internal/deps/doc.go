// Package deps detects the external binaries subfetch shells out to.
package deps
