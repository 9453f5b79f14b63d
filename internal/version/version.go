// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Catalog converter subcommand, YAML config file, snapshot mode
// 0.3.0 - Bright Star Catalog loading, brightness-ranked down-sampling
// 0.2.0 - Split-pane play view, scoring, help overlay, star name display
// 0.1.0 - Initial release: random sky, quaternion attitude controls, screen projection
