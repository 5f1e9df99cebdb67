// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the read-sample-write lifecycle, decoupled
// from any specific entrypoint like a CLI.
package app
