// Package buildinfo holds the identity of the milcheck binary. Version is
// overridden at link time:
//
//	go build -ldflags "-X github.com/specialistvlad/milcheck/internal/buildinfo.Version=1.2.3"
package buildinfo

var (
	// Name is the packaged program name, used when argv[0] is unavailable.
	Name = "milcheck"
	// Version of the build.
	Version = "0.3.0"
	// Description is the one-line summary shown in help output.
	Description = "Check the sync status of your pacman mirrors and read Arch Linux news"
	// Author shown in help output.
	Author = "Pierre D."
	// License is the licence the program is distributed under.
	License = "Mozilla Public License, v2.0"
)
