// Package clock supplies the injectable time source used to stamp
// operation-log entries: a real clock in production, quartz.Mock for
// deterministic tests.
package clock

import "github.com/coder/quartz"

// Clock is quartz.Clock itself; the engine only calls its Now method.
type Clock = quartz.Clock

// Real returns a wall-clock Clock.
func Real() Clock {
	return quartz.NewReal()
}
