package status

import (
	"context"

	"github.com/specialistvlad/milcheck/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Kind is the verdict for one mirrorlist server.
type Kind int

const (
	NotFound Kind = iota
	Synced
	OutOfSync
)

// Label is the text shown in the State column.
func (k Kind) Label() string {
	switch k {
	case Synced:
		return "Ok"
	case OutOfSync:
		return "Out of sync!"
	default:
		return "Not found!"
	}
}

// State is the verdict for one server. Mirror is only set when Kind is not
// NotFound.
type State struct {
	Kind   Kind
	Server string
	Mirror Mirror
}

// Classify checks every server against the report and the scraped page, one
// goroutine per server. The result follows the order of servers.
func Classify(ctx context.Context, servers []string, report *Report, page *Scrape) ([]State, error) {
	logger := ctxlog.FromContext(ctx)
	idx := report.index()
	states := make([]State, len(servers))

	g, ctx := errgroup.WithContext(ctx)
	for i, server := range servers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			states[i] = classifyOne(server, idx, page)
			logger.Debug("Server classified.", "server", server, "state", states[i].Kind.Label())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return states, nil
}

func classifyOne(server string, idx map[string]*MirrorURL, page *Scrape) State {
	u, ok := idx[server]
	if !ok {
		return State{Kind: NotFound, Server: server}
	}
	kind := Synced
	if page.IsOutOfSync(server) {
		kind = OutOfSync
	}
	return State{Kind: kind, Server: server, Mirror: NewMirror(u)}
}
