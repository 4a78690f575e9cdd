package args

import (
	"context"
	"strings"

	"cspr/cltype"
	"cspr/log"

	"golang.org/x/sync/errgroup"
)

var logger = log.WithModule("args")

// FromSimpleOrJSON builds the args of a single slot from either a list of
// simple args or a JSON args string. Supplying both is a conflict; supplying
// neither yields no args.
func FromSimpleOrJSON(slotName string, simple []string, json string) (cltype.RuntimeArgs, error) {
	if len(simple) > 0 && json != "" {
		return cltype.RuntimeArgs{}, &ConflictError{
			Context: slotName + " args conflict (simple json)",
			Args:    []string{strings.Join(simple, ", "), json},
		}
	}

	if json != "" {
		out, err := ParseJSONArgs(json)
		if err != nil {
			return cltype.RuntimeArgs{}, err
		}
		logger.Trace("parsed json args", "slot", slotName, "count", out.Len())
		return out, nil
	}

	var out cltype.RuntimeArgs
	for _, token := range simple {
		if err := InsertSimpleArg(token, &out); err != nil {
			return cltype.RuntimeArgs{}, err
		}
	}
	logger.Trace("parsed simple args", "slot", slotName, "count", out.Len())
	return out, nil
}

// Slot is one independent set of args, such as the session or payment args
// of a deploy.
type Slot struct {
	Context string
	Simple  []string
	JSON    string
}

// AssembleSlots assembles every slot concurrently and returns the results in
// slot order. When several slots fail, the error of the lowest-index slot is
// returned, so the outcome does not depend on scheduling.
func AssembleSlots(ctx context.Context, slots ...Slot) ([]cltype.RuntimeArgs, error) {
	out := make([]cltype.RuntimeArgs, len(slots))
	errs := make([]error, len(slots))
	var g errgroup.Group
	for i, slot := range slots {
		i, slot := i, slot
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			out[i], errs[i] = FromSimpleOrJSON(slot.Context, slot.Simple, slot.JSON)
			return nil
		})
	}
	// slot errors are collected per index, never returned through the group
	_ = g.Wait()
	for i, err := range errs {
		if err != nil {
			logger.Debug("arg slot failed", "slot", slots[i].Context, "index", i)
			return nil, err
		}
	}
	logger.Debug("assembled arg slots", "slots", len(slots))
	return out, nil
}
