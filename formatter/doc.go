// Package formatter turns log calls into text.
//
// It has two halves. Format and FormatWithError resolve a message
// template: each "{}" placeholder is replaced, left to right, with the
// next argument. A trailing error that no placeholder asks for is lifted
// out of the argument list and returned separately in the Tuple, so
// callers can write
//
//	log.Infof("{} failed", name, err)
//
// without a dedicated error parameter. Formatting never fails: missing
// arguments leave their placeholders literal, surplus arguments are
// dropped, and an argument whose String or Error method panics renders
// as "[FAILED toString()]". A backslash escapes a placeholder ("\{}"
// renders "{}"), and a doubled backslash escapes the backslash instead.
// Slices and arrays render as "[a, b, c]".
//
// The other half serializes a core.Entry into a single sink line. The
// Formatter interface returns a []byte and WriterFormatter writes
// straight to an io.Writer; the console sink prefers the latter when
// the formatter offers it. TextFormatter and JSONFormatter implement
// both using a pooled bytes.Buffer.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
