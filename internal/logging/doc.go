// Package logging routes edawatch's stderr output.
//
// Two kinds of output share the writer chosen by Setup:
//   - diagnostics, structured slog records for whoever debugs a run
//   - operator messages, short coloured lines for someone at a terminal
//
// Diagnostics use slog levels. Debug is hidden unless --verbose is given
// and --json switches the handler to JSON lines:
//
//	logging.Debug("inspecting container", "id", id, "engine", engine)
//	logging.Warn("inspect exited non-zero", "id", id, "code", code)
//
// Operator messages carry a status glyph (fatih/color drops the colour
// when NO_COLOR is set or stderr is not a terminal):
//
//	logging.UserInfo("no containers matched prefix %q on %s", prefix, engine) // ℹ
//	logging.UserSuccess("compliance report written to %s", path)             // ✓
//	logging.UserWarning("ansible %s is older than the required %s", v, min)   // ⚠
//
// Nothing here writes to stdout; the health report owns it.
package logging
