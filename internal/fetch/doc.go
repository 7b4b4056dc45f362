// Package fetch performs the HTTP GETs milcheck needs. Each request runs on
// its own goroutine and hands its result back through a one-shot channel, so
// independent downloads overlap while the caller keeps a simple
// start-then-wait flow.
package fetch
