package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/julianstephens/dayflow/internal/models"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"es-MX", language.Spanish},
		{"de", language.English},
		{"", language.English},
		{"not a tag", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Match(tt.in); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGreetings(t *testing.T) {
	tests := []struct {
		lang   string
		period models.TimePeriod
		want   string
	}{
		{"en", models.PeriodMorning, "Good Morning"},
		{"en", models.PeriodNight, "Good Night"},
		{"ru", models.PeriodAfternoon, "Добрый день"},
		{"es", models.PeriodEvening, "Buenas Noches"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+string(tt.period), func(t *testing.T) {
			if got := New(tt.lang).Greeting(tt.period); got != tt.want {
				t.Errorf("Greeting = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	en := messages[language.English]
	for tag, entries := range messages {
		for key := range en {
			if _, ok := entries[key]; !ok {
				t.Errorf("%v missing %q", tag, key)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	ru := New("ru")
	if got := ru.Period(models.PeriodEvening); got != "Вечер" {
		t.Errorf("Period = %q", got)
	}
	if got := ru.Sound("sea"); got != "Морские волны" {
		t.Errorf("Sound = %q", got)
	}
	if got := ru.Sound("bagpipes"); got != "bagpipes" {
		t.Errorf("unknown sound = %q, want id back", got)
	}
	if got := New("es").Recurrence(models.RecurrenceAllBlocks); got != "3x / Día" {
		t.Errorf("Recurrence = %q", got)
	}
	if got := New("en").Recurrence(""); got != "Once" {
		t.Errorf("empty recurrence = %q", got)
	}
	if got := New("en").T(OverCapacity, 14, 12); got != "Over capacity: 14/12" {
		t.Errorf("OverCapacity = %q", got)
	}
	if got := New("ru").T(Snooze); got != "Еще 5 минут" {
		t.Errorf("Snooze = %q", got)
	}
}

func TestTip(t *testing.T) {
	en := New("en")
	if en.Tip(0) != en.Tip(5) {
		t.Error("tips should rotate every five days")
	}
	if !strings.Contains(en.Tip(0), "60%") {
		t.Errorf("Tip(0) = %q", en.Tip(0))
	}
	if New("ru").Lang() != "ru" {
		t.Error("Lang mismatch")
	}
}
