// Package cli implements the nvh command-line interface.
//
// There is a single Cobra root command with flag parsing disabled: nvh
// arguments are a chain of commands and values ("gpu 1 fan 75 power 300")
// that only the engine package understands, and tokens like --help,
// --debug or -v are commands in that language rather than flags.
//
// # Startup
//
// Before the engine sees any token the root command:
//
//  1. Loads config.yaml ($NVH_CONFIG or ~/.config/nvh) with NVH_ env overrides
//  2. Validates it; a config error is the only thing that aborts a run
//  3. Picks the color profile for stdout
//  4. Seeds session state from config, detecting display and Xauthority
//     from the desktop session when config leaves them empty
//  5. Chooses a local or dry-run executor for GPU commands
package cli
