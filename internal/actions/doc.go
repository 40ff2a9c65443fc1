// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to an omt command (repo add, config set,
// cache clean, etc.) and orchestrates operations across the config
// store, the cache manager, and the terminal UI.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Store, Cache, and Splog
//   - Actions are stateless - all state lives in the configuration file
//   - Actions handle user interaction through the tui package
package actions
