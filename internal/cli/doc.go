// Package cli implements the translate command line: flag and config wiring,
// one-shot and interactive translation, and the language listing.
package cli
