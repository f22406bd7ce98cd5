// Package cli implements the command-line interface for the vercmp tool.
//
// # Overview
//
// The vercmp CLI compares arbitrary version strings: release strings, kernel
// versions, container image tags, package revisions. Versions are split into
// numeric and alphabetic segments and compared segment by segment, so no
// particular versioning scheme is assumed.
//
// # Commands
//
// compare - Compare two version strings:
//
//	vercmp compare 10.2.3 10.2.3-rc1
//
// Reports the ternary result (-1, 0, 1), the relation (lower, same, higher),
// and which side is higher.
//
// higher - Print the higher of two versions:
//
//	vercmp higher 1.0.2 1.0.10
//
// When the two versions are equivalent, the left one is returned.
//
// highest - Select the highest from a list:
//
//	vercmp highest 1.0.2 1.0.10 1.0.9
//
// sort - Sort versions in ascending order:
//
//	vercmp sort 1.0.10 1.0.2 1.0.9
//
// image - Compare the tags of two container image references:
//
//	vercmp image nvcr.io/nvidia/cuda:12.4.1 nvcr.io/nvidia/cuda:12.3.2
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--log-level      Log level: debug, info, warn, error (default: info)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// JSON:
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal viewing
//
// # Exit Codes
//
//   - 0 - success
//   - 1 - error (invalid input, unknown format, unparseable reference)
package cli
