// Package locale holds the user-facing strings of both supported languages.
package locale

import (
	"embed"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/intothevoid/legendchess/pkg/chess"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Locale is a supported display language.
type Locale int

const (
	English Locale = iota // default
	Turkish               // alternate, offers the flavor prompt
)

// Locales lists the supported locales in the order they are offered.
var Locales = []Locale{English, Turkish}

// Tag returns the BCP 47 language tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == Turkish {
		return language.Turkish
	}
	return language.English
}

// Name is the locale's own name, as shown on the language buttons.
func (l Locale) Name() string {
	if l == Turkish {
		return "Türkçe"
	}
	return "English"
}

func (l Locale) String() string {
	return l.Tag().String()
}

// Parse maps a language code such as "en" or "tr" to a Locale.
func Parse(code string) (Locale, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return English, fmt.Errorf("parse locale %q: %w", code, err)
	}
	base, _ := tag.Base()
	for _, l := range Locales {
		if b, _ := l.Tag().Base(); b == base {
			return l, nil
		}
	}
	return English, fmt.Errorf("unsupported locale %q", code)
}

// Message IDs.
const (
	Title            = "Title"
	Welcome          = "Welcome"
	ChooseLanguage   = "ChooseLanguage"
	ModePrompt       = "ModePrompt"
	Yes              = "Yes"
	No               = "No"
	Quit             = "Quit"
	Restart          = "Restart"
	WhiteTurn        = "WhiteTurn"
	BlackTurn        = "BlackTurn"
	StatusInProgress = "StatusInProgress"
	StatusCheck      = "StatusCheck"
	GameOver         = "GameOver"
	WhiteWon         = "WhiteWon"
	BlackWon         = "BlackWon"
	Draw             = "Draw"
)

// TurnMessage returns the message ID announcing c's turn.
func TurnMessage(c chess.Color) string {
	if c == chess.Black {
		return BlackTurn
	}
	return WhiteTurn
}

// ResultMessage returns the message ID for the result of a finished game.
func ResultMessage(r chess.Result) string {
	switch r {
	case chess.WhiteWon:
		return WhiteWon
	case chess.BlackWon:
		return BlackWon
	default:
		return Draw
	}
}

// flavorPrefix marks messages that replace their plain counterpart when
// the alternate flavor is on.
const flavorPrefix = "Flavor"

var bundle = mustLoadBundle()

func mustLoadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, err := messageFS.ReadDir("messages")
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		if _, err := b.LoadMessageFileFS(messageFS, "messages/"+f.Name()); err != nil {
			panic(fmt.Sprintf("load %s: %v", f.Name(), err))
		}
	}
	return b
}

// Translator looks up strings for one locale.
type Translator struct {
	locale    Locale
	flavor    bool
	localizer *i18n.Localizer
}

// NewTranslator creates a translator for l. The flavor substitutions are
// only applied for the alternate locale.
func NewTranslator(l Locale, flavor bool) *Translator {
	return &Translator{
		locale:    l,
		flavor:    flavor && l == Turkish,
		localizer: i18n.NewLocalizer(bundle, l.Tag().String()),
	}
}

// Locale returns the translator's locale.
func (t *Translator) Locale() Locale {
	return t.locale
}

// T returns the string for id. Unknown IDs are returned unchanged.
func (t *Translator) T(id string) string {
	if t.flavor {
		if s, _ := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: flavorPrefix + id}); s != "" {
			return s
		}
	}
	// a message missing in the locale comes back from the default
	// language together with a not-found error
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if s == "" {
		log.Printf("missing message %q for %s: %v", id, t.locale, err)
		return id
	}
	return s
}

// Bilingual joins the string for id in every locale, for screens shown
// before a language is chosen.
func Bilingual(id string) string {
	var s string
	for i, l := range Locales {
		if i > 0 {
			s += " || "
		}
		s += NewTranslator(l, false).T(id)
	}
	return s
}
