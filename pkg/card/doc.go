// Package card builds adaptive cards: an Instance keeps a card's layout
// variant in sync with its text container, and a Composer renders it.
package card
