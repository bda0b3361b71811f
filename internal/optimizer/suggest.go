package optimizer

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/models"
)

// Suggestion is a weight computed for a specific title snapshot.
type Suggestion struct {
	Title  string
	Weight models.TaskWeight
}

// Eligible reports whether a title is long enough to be worth classifying.
func Eligible(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) >= constants.SuggestMinLength
}

// Suggester debounces weight suggestions for a title that is being typed.
// Every Update restarts the delay. When it elapses the classifier runs on
// the snapshot taken at that Update, and the result is delivered only if
// the live title still equals the snapshot. Stale results are dropped.
type Suggester struct {
	classifier WeightClassifier
	delay      time.Duration

	mu      sync.Mutex
	live    string
	timer   *time.Timer
	stopped bool
	results chan Suggestion
}

func NewSuggester(classifier WeightClassifier, delay time.Duration) *Suggester {
	if classifier == nil {
		classifier = NewHeuristic()
	}
	if delay <= 0 {
		delay = constants.SuggestDebounce
	}
	return &Suggester{
		classifier: classifier,
		delay:      delay,
		results:    make(chan Suggestion, 1),
	}
}

// Results delivers fresh suggestions. Only the latest undelivered one is kept.
func (s *Suggester) Results() <-chan Suggestion {
	return s.results
}

// Update records the live title and schedules a suggestion for it.
func (s *Suggester) Update(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.live = title
	if s.timer != nil {
		s.timer.Stop()
	}
	if !Eligible(title) {
		s.timer = nil
		return
	}
	snapshot := title
	s.timer = time.AfterFunc(s.delay, func() { s.fire(snapshot) })
}

func (s *Suggester) fire(snapshot string) {
	weight := s.classifier.SuggestWeight(snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.live != snapshot {
		return
	}
	// replace any unread suggestion with this one
	select {
	case <-s.results:
	default:
	}
	s.results <- Suggestion{Title: snapshot, Weight: weight}
}

// Fresh reports whether sg still matches the live title.
func (s *Suggester) Fresh(sg Suggestion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sg.Title == s.live
}

// Stop cancels any pending suggestion. Later updates are ignored.
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
