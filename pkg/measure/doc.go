// Package measure decides how a card lays out its text.
//
// The pipeline runs in three steps. Probe turns a container's rendered height
// and line height into a line count. ShadowDetector answers whether a badge
// appended to the last line would force another line, by laying the same text
// out again in a hidden box with a placeholder the size of the badge.
// Classify maps those results and the card kind onto a Variant.
//
// Nothing here fails. Missing geometry degrades to documented defaults.
package measure
