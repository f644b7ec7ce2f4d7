// Package buildhost models the parts of a build system that errorprone-sl
// plugs into: projects, plugins, extensions, compile tasks and dependency
// configurations.
//
// A Project is evaluated in two steps. Evaluate first runs the configuration
// scripts in order, then the hooks registered with AfterEvaluate in
// registration order. Everything runs on the caller's goroutine; a Project is
// not safe for concurrent use.
package buildhost
