// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two run modes (mirror status and news),
// decoupled from the command-line entrypoint.
package app
