// Package locale provides the localized strings shown in stack headers.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.toml
var translations embed.FS

// Message IDs.
const (
	BackTitle     = "BackTitle"
	HomeTitle     = "HomeTitle"
	DetailTitle   = "DetailTitle"
	SettingsTitle = "SettingsTitle"
)

var defaults = map[string]string{
	BackTitle:     constants.DefaultBackTitle,
	HomeTitle:     "Home",
	DetailTitle:   "Detail {{.Number}}",
	SettingsTitle: "Settings",
}

// Localizer resolves messages for one preferred language, falling back to
// English.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the bundled translations and prefers langs in order. Unknown
// languages fall back to English.
func New(langs ...string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(translations, "translations/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(translations, file); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", path.Base(file), err)
		}
	}

	l := &Localizer{localizer: i18n.NewLocalizer(bundle, append(langs, language.English.String())...)}
	_, l.tag, _ = l.localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: BackTitle})
	return l, nil
}

// Language is the language messages are served in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Message localizes id with optional template data. Unknown ids return id.
func (l *Localizer) Message(id string, data map[string]any) string {
	fallback, ok := defaults[id]
	if !ok {
		fallback = id
	}

	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil || text == "" {
		return fallback
	}
	return text
}

// BackTitle is the label of the back button when the previous title does not
// fit.
func (l *Localizer) BackTitle() string {
	return l.Message(BackTitle, nil)
}
