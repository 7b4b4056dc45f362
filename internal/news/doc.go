// Package news scrapes the "Latest News" block of the Arch Linux home page
// and renders it as wrapped, footnoted terminal text.
package news
