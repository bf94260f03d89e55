// Package locale holds the dropdown's translated UI strings.
package locale

import (
	"embed"
	"encoding/json"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	PlaceholderID = "Dropdown.Placeholder"
)

// DefaultLanguage is used when a requested language has no translation.
var DefaultLanguage = language.English

//go:embed messages/*.json
var messageFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

var placeholderMessage = &i18n.Message{
	ID:          PlaceholderID,
	Description: "Trigger text shown while nothing is selected",
	Other:       "-Select-",
}

// Bundle returns the shared message bundle, loading the embedded message
// files on first use.
func Bundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(DefaultLanguage)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			bundleErr = err
			return
		}
		for _, e := range entries {
			p := path.Join("messages", e.Name())
			data, err := messageFS.ReadFile(p)
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, p); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Languages returns the tags that have translations.
func Languages() []language.Tag {
	b, err := Bundle()
	if err != nil {
		return []language.Tag{DefaultLanguage}
	}
	return b.LanguageTags()
}

// Placeholder returns the localised "-Select-" text for tag, falling back
// to English.
func Placeholder(tag language.Tag) string {
	return Translate(tag, placeholderMessage)
}

// Translate localises msg for tag. The message's Other text is returned
// when the bundle cannot be loaded or has no entry.
func Translate(tag language.Tag, msg *i18n.Message) string {
	b, err := Bundle()
	if err != nil {
		return msg.Other
	}
	l := i18n.NewLocalizer(b, tag.String(), DefaultLanguage.String())
	s, err := l.Localize(&i18n.LocalizeConfig{MessageID: msg.ID, DefaultMessage: msg})
	if err != nil || s == "" {
		return msg.Other
	}
	return s
}
