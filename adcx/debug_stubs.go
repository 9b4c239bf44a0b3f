//go:build !adcxdebug

package adcx

// No-op counter hooks; build with -tags adcxdebug to enable accounting.
type dbgCounters struct{}

func (d *dbgCounters) signal()       {}
func (d *dbgCounters) stored()       {}
func (d *dbgCounters) discarded(int) {}
func (d *dbgCounters) restart()      {}
