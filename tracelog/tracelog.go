// Package tracelog connects search hooks to a logrus logger, so a run can be
// traced without the search loop itself logging anything.
//
// Every run gets its own "run" field (a random UUID) and, once the start is
// resolved, an "algo" field. Expansions, pushes and pops are logged at Debug;
// the start, dead ends and the outcome at Info; a missing start at Warn.
package tracelog

import (
	"cmp"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/search"
)

// Options returns search options that log each event of one run to logger.
// Call it once per run; the returned options share per-run state.
func Options[K cmp.Ordered](logger log.FieldLogger) []search.Option[K] {
	if logger == nil {
		logger = log.StandardLogger()
	}
	entry := logger.WithField("run", uuid.NewString())

	return []search.Option[K]{
		search.WithOnStart(func(algo search.Algorithm, start K) {
			entry = entry.WithField("algo", algo.String())
			entry.WithField("node", start).Infof("starting %s from %v", algo, start)
		}),
		search.WithOnEnqueue(func(n search.Node[K]) {
			entry.WithFields(log.Fields{"node": n.ID, "cost": n.Cost}).Debug("adding node to frontier")
		}),
		search.WithOnDequeue(func(n search.Node[K]) {
			entry.WithFields(log.Fields{"node": n.ID, "cost": n.Cost}).Debug("checking if node is the goal")
		}),
		search.WithOnDiscard(func(n search.Node[K]) {
			entry.WithFields(log.Fields{"node": n.ID, "cost": n.Cost}).Debug("skipping finalized node")
		}),
		search.WithOnExpand(func(n search.Node[K], children []K) {
			if len(children) == 0 {
				entry.WithField("node", n.ID).Infof("no new nodes found from %v, backtracking", n.ID)
				return
			}
			entry.WithFields(log.Fields{"node": n.ID, "children": children}).Debug("expanded node")
		}),
		search.WithOnFinish[K](func(o search.Outcome) {
			switch o {
			case search.NoStart:
				entry.WithField("outcome", o.String()).Warn("no start node found")
			case search.GoalFound:
				entry.WithField("outcome", o.String()).Info("goal found")
			default:
				entry.WithField("outcome", o.String()).Info("search finished without a goal")
			}
		}),
	}
}
