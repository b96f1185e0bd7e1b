// Package platylog provides a leveled, colorized console logger with
// rotating file persistence.
//
// Features:
//   - Six severities selected by independent display and save bitmasks
//   - Colorized console output with automatic plain-text fallback
//   - Session-scoped file rotation with timestamp-derived archive names
//   - Capped archive retention with oldest-first eviction
//   - Configurable header template
//   - TOML configuration file support with validation
//   - Thread-safe operations
//
// Each process session writes to a single active log file. The first
// persisted message of a session archives any file left over from a previous
// session, then starts a fresh one whose first line records the creation
// time. Archive names are derived from that line, so a session created at
// 2024-03-07 9:05:01 is rotated out as log_2024.3.7.9-5-1.txt.
package platylog
