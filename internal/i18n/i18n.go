// Package i18n holds the interface strings for English, Russian and Spanish.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/julianstephens/dayflow/internal/models"
)

// Key identifies a translatable string.
type Key string

const (
	Today          Key = "today"
	Upcoming       Key = "upcoming"
	Week           Key = "week"
	Month          Key = "month"
	Year           Key = "year"
	Rhythm         Key = "rhythm"
	AlarmTitle     Key = "alarm"
	SettingsTitle  Key = "settings"
	Now            Key = "now"
	RecoveryMode   Key = "recoveryMode"
	WindDown       Key = "windDown"
	AddPoint       Key = "addPoint"
	Placeholder    Key = "placeholder"
	Weightless     Key = "weightless"
	Leisure        Key = "leisure"
	RecoveryActive Key = "recoveryActive"
	Save           Key = "save"
	LanguageLabel  Key = "language"
	SoundLabel     Key = "sound"
	EnableAlarm    Key = "enableAlarm"
	MoveTask       Key = "moveTask"
	CarriedForward Key = "carriedForward"
	NoUpcoming     Key = "noUpcoming"
	UpcomingTasks  Key = "upcomingTasks"
	FlowStart      Key = "flowStart"
	EnterThread    Key = "enterThread"
	Snooze         Key = "snooze"
	RecurrenceKey  Key = "recurrence"
	OverCapacity   Key = "overCapacity"
	SleepTooShort  Key = "sleepTooShort"
	SpanTooShort   Key = "spanTooShort"
)

var (
	supported = []language.Tag{language.English, language.Russian, language.Spanish}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Match resolves any BCP 47 string to one of the shipped languages,
// falling back to English.
func Match(lang string) language.Tag {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	for _, t := range supported {
		if b, _ := t.Base(); b == base {
			return t
		}
	}
	return language.English
}

// Translator looks up strings for one language. It is not safe for
// concurrent use.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Lang returns the base language code, e.g. "ru".
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Period returns the display label of a block.
func (t *Translator) Period(p models.TimePeriod) string {
	return t.T(Key(p))
}

// Greeting returns the salutation for a block.
func (t *Translator) Greeting(p models.TimePeriod) string {
	return t.T(Key("greeting." + string(p)))
}

// Sound returns the label of an alarm sound, or the id if it is unknown.
func (t *Translator) Sound(id string) string {
	key := "sound." + id
	if _, ok := messages[language.English][Key(key)]; !ok {
		return id
	}
	return t.T(Key(key))
}

func (t *Translator) Recurrence(r models.Recurrence) string {
	if r == "" {
		r = models.RecurrenceNone
	}
	return t.T(Key("rec." + string(r)))
}

// Tip returns a recovery tip, rotating by day of year.
func (t *Translator) Tip(yearDay int) string {
	list := tips[t.Lang()]
	if len(list) == 0 {
		list = tips["en"]
	}
	i := yearDay % len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}
