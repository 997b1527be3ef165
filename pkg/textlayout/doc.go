// Package textlayout is the measurement surface cards are laid out on.
//
// A Box is a text container with a fixed width, a font and a line height.
// Its text is broken into lines the way a browser breaks a paragraph with
// white-space: normal: break opportunities come from the Unicode line
// breaking algorithm (UAX 14), trailing white space hangs past the edge,
// and overflow-wrap decides what happens to a word wider than the line.
//
// Boxes also accept atomic inline placeholders. A placeholder occupies a
// fixed advance on a line and is a break opportunity on both sides, which is
// what lets callers ask hypothetical questions such as "would N more units
// on the last line force another line?" without touching the visible text.
//
// Layout units are abstract. CellFont maps terminal cells to units so a
// renderer can work in cells while measurements stay in units.
//
// Boxes are not safe for concurrent use. Size observers run synchronously on
// the goroutine that mutated the box.
package textlayout
