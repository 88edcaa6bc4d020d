// Package runlog records completed split runs in a local SQLite database.
//
// History is strictly best-effort: the pipeline logs and ignores every
// runlog failure so a broken database never affects a run's outcome.
package runlog
