package log

import (
	ethlog "github.com/ethereum/go-ethereum/log"
)

// Logger is the structured logger used across the node.
type Logger = ethlog.Logger

// New returns a logger with the given context attached to every record.
func New(ctx ...interface{}) Logger {
	return ethlog.New(ctx...)
}

// Root returns the process-wide root logger.
func Root() Logger {
	return ethlog.Root()
}

func Trace(msg string, ctx ...interface{}) {
	ethlog.Trace(msg, ctx...)
}

func Debug(msg string, ctx ...interface{}) {
	ethlog.Debug(msg, ctx...)
}

func Info(msg string, ctx ...interface{}) {
	ethlog.Info(msg, ctx...)
}

func Warn(msg string, ctx ...interface{}) {
	ethlog.Warn(msg, ctx...)
}

func Error(msg string, ctx ...interface{}) {
	ethlog.Error(msg, ctx...)
}

func Crit(msg string, ctx ...interface{}) {
	ethlog.Crit(msg, ctx...)
}
