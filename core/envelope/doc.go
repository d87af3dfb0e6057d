// Package envelope extracts the assistant text from a raw chat-completion
// response body, the step that sits between a transport client and the
// parsers in plan and generate.
package envelope
