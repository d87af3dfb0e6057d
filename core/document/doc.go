// Package document models the supporting documents sent upstream alongside a
// plan request: library documents the user can toggle on or off, and
// reference files that are always included.
//
// [LoadFile] reads a document from disk. HTML files are converted to markdown
// on load so the placeholder guard and the upstream model see the same text a
// reader would.
package document
