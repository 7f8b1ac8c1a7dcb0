// Package translate formats user-facing messages for the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translations of the core's messages, keyed by their en-US pattern.
var catalog = map[language.Tag]map[string]string{
	language.German: {
		"unimplemented instruction": "nicht implementierter Befehl",
		"no memory attached":        "kein Speicher angeschlossen",
		"pc 0x%04x [% x]: %v":       "PC 0x%04x [% x]: %v",
	},
}

var printer *message.Printer

func init() {
	for tag, entries := range catalog {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				log.Printf("sm83: catalog %v: %v", tag, err)
			}
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sm83: locale: %v", err)
	}
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}
	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style pattern for the host locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// In formats key for the BCP 47 language lang instead of the host locale.
// An unparsable lang falls back to undetermined, which formats like en-US.
func In(lang string, key message.Reference, args ...any) string {
	tag, _ := language.Parse(lang)
	return message.NewPrinter(tag).Sprintf(key, args...)
}
