// @focus: #sys { term }
// Package terminal owns the controlling terminal for the viewer.
//
// Features:
//   - Raw mode entry and idempotent restoration (termios via x/sys/unix)
//   - Screen size query through TIOCGWINSZ
//   - Byte input with a 100ms read timeout and hangup detection
//   - Key decoding: printable, control, bare Escape and CSI arrow sequences
//   - Key names for configuration files
//
// Output is plain VT100 sequences; terminfo is not consulted.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
