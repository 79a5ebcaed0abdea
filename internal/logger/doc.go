// Package logger wraps zap with the project's logging conventions:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and runtime level adjustment,
//   - convenience functions (Infof, WarnKV, and friends).
//
// Components accept a context and log through it, so entries pick up the
// component name and any scoped fields automatically.
package logger
