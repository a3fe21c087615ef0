package node

import (
	"golang.org/x/text/language"

	"github.com/joshuapare/axtree/pkg/types"
)

// LanguageTag parses the language property as a BCP 47 tag. ok is false
// when the property is unset or not a well-formed tag.
func (n *Node) LanguageTag() (tag language.Tag, ok bool) {
	s, ok := n.Language()
	if !ok {
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// SetLanguageTag sets the language property to the canonical form of tag.
func (b *Builder) SetLanguageTag(tag language.Tag) *Builder {
	return b.SetLanguage(tag.String())
}

// ValidateLanguage reports whether s is a well-formed BCP 47 tag.
func ValidateLanguage(s string) error {
	if _, err := language.Parse(s); err != nil {
		return types.Wrap(types.ErrKindFormat, err, "invalid language tag")
	}
	return nil
}
