// Package services defines the error taxonomy shared by subfetch operations
// and houses clients for the external tools the CLI shells out to.
package services
