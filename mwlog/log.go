// Package mwlog is the subsystem logger shared by this module's
// packages, following the teacher's per-package log.go convention: a
// package-level btclog.Logger defaulting to disabled, wired to a real
// backend via UseLogger by whatever embeds this module.
package mwlog

import (
	"fmt"

	"github.com/btcsuite/btclog"
)

// log is the module-wide subsystem logger. It starts disabled, the
// same default every lnd subsystem logger has before UseLogger runs.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the logger used by stealth and txbuilder. Call it once during application setup, the same way lnd's
// per-package UseLogger functions are wired from its main.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Debugf logs at debug level through the module's subsystem logger.
func Debugf(format string, params ...interface{}) {
	log.Debugf(format, params...)
}

// Tracef logs at trace level through the module's subsystem logger.
func Tracef(format string, params ...interface{}) {
	log.Tracef(format, params...)
}

// closure defers a string-producing function until it is actually
// formatted, the same lazy-dump idiom the teacher's newLogClosure gives
// spew.Sdump callers (see peer.go, breacharbiter.go) so a disabled
// logger never pays for the dump.
type closure func() string

func (c closure) String() string { return c() }

// NewClosure wraps fn so it is only invoked if the log level that
// receives it is actually enabled.
func NewClosure(fn func() string) fmt.Stringer {
	return closure(fn)
}
