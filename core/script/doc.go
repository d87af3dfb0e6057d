// Package script builds the presenter's demo script from generated units: an
// opening, one section and business-value callout per unit, and a closing,
// together with a markdown rendering suitable for a teleprompter or export.
package script
