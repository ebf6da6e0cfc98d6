// Package card builds deck lines. Cards are recorded first and rendered once,
// so nothing is written before all of them are known.
package card

import (
	"strings"
)

// Card is single line of deck: name followed by space separated values.
// Name may be empty for continuation style lines e.g. source entries.
type Card struct {
	Name   string
	Values []string
}

// New constructs card.
func New(name string, values ...string) Card {
	return Card{Name: name, Values: values}
}

// Entry renders "key=v1 v2 ..." source entry.
func Entry(key string, values ...string) string {
	return key + "=" + strings.Join(values, " ")
}

// String renders card without trailing separators.
func (c Card) String() string {
	tokens := make([]string, 0, len(c.Values)+1)
	if c.Name != "" {
		tokens = append(tokens, c.Name)
	}
	for _, value := range c.Values {
		if value != "" {
			tokens = append(tokens, value)
		}
	}
	return strings.Join(tokens, " ")
}

// Builder is append-only sequence of cards.
type Builder struct {
	cards []Card
}

// Add appends cards.
func (b *Builder) Add(cards ...Card) *Builder {
	b.cards = append(b.cards, cards...)
	return b
}

// Len returns number of cards.
func (b *Builder) Len() int {
	return len(b.cards)
}

// Cards returns copy of recorded cards.
func (b *Builder) Cards() []Card {
	return append([]Card(nil), b.cards...)
}

// Render joins cards with newlines, without trailing newline.
func (b *Builder) Render() string {
	lines := make([]string, len(b.cards))
	for i, c := range b.cards {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Fragment is encoded part of deck preceded by comment line.
type Fragment struct {
	Comment string
	Body    string
}

// Comment returns "c --- description" comment line.
func Comment(description string) string {
	return strings.TrimRight("c --- "+description, " ")
}

// String renders comment, body and trailing newline.
func (f Fragment) String() string {
	return f.Comment + "\n" + f.Body + "\n"
}
