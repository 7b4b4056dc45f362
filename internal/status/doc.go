// Package status decides, for every server in the local mirrorlist, whether
// the Arch Linux mirror status service considers it synced, out of sync, or
// does not know it at all.
//
// Two sources are combined: the JSON feed at /mirrors/status/json/ gives the
// per-mirror metrics, and the HTML page at /mirrors/status/ lists the mirrors
// that are currently out of sync.
package status
