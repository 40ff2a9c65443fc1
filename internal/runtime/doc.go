// Package runtime provides the execution context for omt commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// configuration store, cache manager, and logger.
package runtime
