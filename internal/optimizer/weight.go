package optimizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/julianstephens/dayflow/internal/models"
)

const (
	shortTitleMax = 20
	longTitleMin  = 50
)

var quickKeywords = []string{
	"email", "почта", "письмо", "звонок", "call", "sms", "message", "сообщение",
	"coffee", "кофе", "чай", "tea", "break", "перерыв",
	"check", "проверить", "посмотреть", "glance",
	"quick", "быстро", "легко", "simple", "простой",
	"оплатить", "pay", "bill", "счет",
	"купить", "buy", "магазин", "shop", "store",
	"убрать", "уборка", "clean", "tidy",
	"заказать", "order", "доставка", "delivery",
}

// Stems like "strateg" or "migrat" match every inflection of the word.
var deepKeywords = []string{
	"код", "code", "разработать", "develop", "программ", "program",
	"дизайн", "design", "проект", "project", "систем", "system",
	"исследование", "research", "анализ", "analyze", "анализировать",
	"написать", "write", "статья", "article", "книга", "book", "глава", "chapter",
	"изучить", "study", "learn", "курс", "course", "экзамен", "exam",
	"стратег", "strateg", "планирован", "plann", "roadmap",
	"презентация", "presentation", "доклад", "report",
	"рефактор", "refactor", "оптимиз", "optimiz", "миграц", "migrat",
	"тест", "test", "testing", "тестирован",
	"архитектур", "architect", "инфраструктур", "infrastruct",
}

// WeightClassifier turns a task title into a weight.
type WeightClassifier interface {
	SuggestWeight(title string) models.TaskWeight
}

// Heuristic is the offline keyword and length classifier.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// SuggestWeight classifies a title. If exactly one keyword list matches, its
// weight wins; otherwise titles of at most 20 characters are quick, titles
// of 50 or more are deep, and everything else is focused.
func (h *Heuristic) SuggestWeight(title string) models.TaskWeight {
	normalized := strings.TrimSpace(cases.Lower(language.Und).String(title))

	quick := containsAny(normalized, quickKeywords)
	deep := containsAny(normalized, deepKeywords)
	switch {
	case deep && !quick:
		return models.WeightDeep
	case quick && !deep:
		return models.WeightQuick
	}

	n := utf8.RuneCountInString(normalized)
	switch {
	case n <= shortTitleMax:
		return models.WeightQuick
	case n >= longTitleMin:
		return models.WeightDeep
	default:
		return models.WeightFocused
	}
}

// SuggestWeight runs the default heuristic.
func SuggestWeight(title string) models.TaskWeight {
	return NewHeuristic().SuggestWeight(title)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
