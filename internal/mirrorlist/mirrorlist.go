// Package mirrorlist reads the server entries of a pacman mirrorlist.
package mirrorlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPath is where pacman keeps its mirrorlist.
const DefaultPath = "/etc/pacman.d/mirrorlist"

const serverPrefix = "Server = "

// repoSuffixes are trimmed so that a server entry matches the mirror URL
// published by the Arch status API. The slash before $repo is kept.
var repoSuffixes = []string{"$repo/os/$arch/", "$repo/os/$arch"}

// Load reads the mirrorlist at path and returns its servers in file order.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("an error occurred while reading the file %s: %w", path, err)
	}
	defer f.Close()

	servers, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("an error occurred while reading the file %s: %w", path, err)
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("no server found in %s", path)
	}
	return servers, nil
}

// Parse extracts the servers from mirrorlist content. Commented out entries
// are ignored. An input without servers is not an error here.
func Parse(r io.Reader) ([]string, error) {
	var servers []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if !strings.HasPrefix(line, serverPrefix) {
			continue
		}
		servers = append(servers, trimServer(line[len(serverPrefix):]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return servers, nil
}

func trimServer(server string) string {
	for _, suffix := range repoSuffixes {
		if trimmed, ok := strings.CutSuffix(server, suffix); ok && strings.HasSuffix(trimmed, "/") {
			return trimmed
		}
	}
	return server
}
