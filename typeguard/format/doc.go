// Package format renders values as compact, human-readable text for diagnostics.
//
// Output is meant for error messages and logs, never for parsing. Rendering is
// driven by the token classifier: arrays print as [a, b], objects as {key: value},
// strings in single quotes, big integers with an n suffix, and symbols as an
// opaque Symbol(...) placeholder.
//
// Deep recurses into nested containers up to MaxDepth. Shallow stops one level
// down and prints nested containers as [...] or {...}; use Shallow (or Diagnostic,
// which also truncates) for any caller-supplied data that reaches a message.
package format
