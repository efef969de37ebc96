package controller

import "github.com/intothevoid/legendchess/pkg/locale"

// Mode is the top-level screen the player is on.
type Mode int

const (
	LanguageSelect Mode = iota
	ModePrompt
	Playing
	GameOver
)

func (m Mode) String() string {
	switch m {
	case LanguageSelect:
		return "language-select"
	case ModePrompt:
		return "mode-prompt"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Decoration is how a square is highlighted on screen.
type Decoration int

const (
	NeutralLight Decoration = iota
	NeutralDark
	Selected
	LegalDestination
)

func (d Decoration) String() string {
	switch d {
	case NeutralLight:
		return "light"
	case NeutralDark:
		return "dark"
	case Selected:
		return "selected"
	case LegalDestination:
		return "destination"
	default:
		return "unknown"
	}
}

// DisplayConfig is the language and flavor picked during onboarding.
// It is fixed once play starts.
type DisplayConfig struct {
	Locale locale.Locale
	Flavor bool
}

// FlavorActive reports whether the flavor substitutions apply. They only
// exist for the alternate locale.
func (d DisplayConfig) FlavorActive() bool {
	return d.Flavor && d.Locale == locale.Turkish
}

// Translator returns the string table for this configuration.
func (d DisplayConfig) Translator() *locale.Translator {
	return locale.NewTranslator(d.Locale, d.Flavor)
}
