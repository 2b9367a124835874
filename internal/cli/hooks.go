package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dockyard/pkg/observability"
)

// logHooks reports drag and tree events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnDragStart(dockable string, group int) {
	h.logger.Debug("drag start", "dockable", dockable, "group", group)
}

func (h logHooks) OnDrop(dockable, outcome string, d time.Duration) {
	h.logger.Info("dropped", "dockable", dockable, "outcome", outcome, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnCancel(dockable, reason string) {
	h.logger.Info("drag cancelled", "dockable", dockable, "reason", reason)
}

func (h logHooks) OnExtract(dockable string, width, height int) {
	h.logger.Info("opened window", "dockable", dockable, "width", width, "height", height)
}

func (h logHooks) OnPrune(layout, kind string) {
	h.logger.Debug("pruned", "layout", short(layout), "kind", kind)
}

func (h logHooks) OnCollapse(split, child string, collapsed bool) {
	h.logger.Debug("collapse", "split", short(split), "child", short(child), "collapsed", collapsed)
}

// installHooks routes observability events to l.
func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetDragHooks(h)
	observability.SetTreeHooks(h)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
