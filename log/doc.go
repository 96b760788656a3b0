// Package log provides a wrapped zap logger for spg and its users,
// and also a simple Wrapper type that Generators write their notices to.
//
// The global logger is a nop logger until one of the Init functions is called:
//
//	log.InitLogger(log.WarnLevel)
//
// After that, notices written by the default Generators through WarnWrapper
// will show up in the log, for example:
//
//	level=WARN	spg: unrecognized character !
package log
