// Package request defines the typed operation requests reelkit accepts and
// the per-operation rules that make them safe to turn into command lines.
//
// Requests follow the same split the config package uses: Normalize fills
// derivable defaults (project name from the first content file, DCP output
// under the project output), then Validate performs pure checks plus
// filesystem stats for paths that must already exist. A request that
// passes both is guaranteed to build a complete argument vector.
package request
