// Package textutil provides small text helpers shared across subfetch.
package textutil
