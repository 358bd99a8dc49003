package service

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

// Greeting words anchored at the start of the trimmed, lower-cased question.
var greetingRe = regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening|howdy|sup|what's up|yo|hiya|greetings)\b`)

var greetingResponses = []string{
	"Hello! I'm your Bubble assistant. Ask me anything about building your app.",
	"Hi there! Ready to help you with Bubble. What would you like to know?",
	"Hey! Great to hear from you. What can I help you build today?",
	"Hello! Ask me about workflows, data types, or anything else in Bubble.",
	"Hi! I'm here to answer your Bubble questions. Fire away.",
}

var thankYouPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bthanks\b`),
	regexp.MustCompile(`\bthank you\b`),
	regexp.MustCompile(`\bthx\b`),
	regexp.MustCompile(`\bappreciate\b`),
	regexp.MustCompile(`\bgrateful\b`),
	regexp.MustCompile(`\bhelpful\b`),
}

var thankYouResponses = []string{
	"You're very welcome! Happy to help anytime.",
	"Glad I could help! Let me know if anything else comes up.",
	"My pleasure! Good luck with your app.",
	"Anytime! That's what I'm here for.",
}

var complimentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bgreat job\b`),
	regexp.MustCompile(`\bwell done\b`),
	regexp.MustCompile(`\bnice (job|one)\b`),
	regexp.MustCompile(`\byou('re| are) (amazing|awesome|great|incredible|the best)\b`),
	regexp.MustCompile(`\bexcellent job\b`),
	regexp.MustCompile(`\bperfect\b`),
	regexp.MustCompile(`\bbrilliant\b`),
	regexp.MustCompile(`\bimpressive\b`),
}

var complimentResponses = []string{
	"Thank you! I do my best to make Bubble easier for you.",
	"That's kind of you to say! Let's keep building.",
	"Thanks! Always happy when the answers land well.",
}

// Canned platform questions, tested in list order.
var commonQuestions = []struct {
	pattern *regexp.Regexp
	answer  string
}{
	{
		regexp.MustCompile(`^what('s| is) bubble\??$`),
		"Bubble is a no-code platform that lets you build fully functional web applications without writing code. You design your pages visually, define your data types, and wire up behavior with workflows.",
	},
	{
		regexp.MustCompile(`^how (do|can) i get started\??$`),
		"To get started, create a free Bubble account, open the editor, and try one of the interactive lessons. They walk you through pages, data, and workflows step by step.",
	},
	{
		regexp.MustCompile(`\bis bubble free\b`),
		"Bubble has a free plan that is great for learning and prototyping. Paid plans add custom domains, more capacity, and collaboration features.",
	},
	{
		regexp.MustCompile(`^what can i build\b`),
		"You can build marketplaces, social networks, internal tools, dashboards, and most other kinds of web applications. If it runs in a browser, chances are you can build it in Bubble.",
	},
	{
		regexp.MustCompile(`\bwhat (is|are) workflows?\b`),
		"Workflows are how your app responds to events in Bubble. When a user clicks a button or a page loads, a workflow runs a series of actions such as creating data, navigating, or showing alerts.",
	},
	{
		regexp.MustCompile(`\bdo i need to (know how to )?code\b`),
		"No coding is required. Everything in Bubble is built visually, from the page layout to the database and the logic.",
	},
}

// QuickResponder short-circuits greetings, thanks, compliments and common
// canned questions before any generation happens. Pure over its fixed pools;
// the selector is seedable so tests stay deterministic.
type QuickResponder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuickResponder(seed int64) *QuickResponder {
	return &QuickResponder{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Match returns a speech-formatted canned response, or ok=false when the
// question needs real generation. Rules run in fixed priority order.
func (q *QuickResponder) Match(question string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(question))
	if text == "" {
		return "", false
	}

	if greetingRe.MatchString(text) {
		return FormatResponseForSpeech(q.pick(greetingResponses)), true
	}

	for _, canned := range commonQuestions {
		if canned.pattern.MatchString(text) {
			return FormatResponseForSpeech(canned.answer), true
		}
	}

	for _, pattern := range thankYouPatterns {
		if pattern.MatchString(text) {
			return FormatResponseForSpeech(q.pick(thankYouResponses)), true
		}
	}

	for _, pattern := range complimentPatterns {
		if pattern.MatchString(text) {
			return FormatResponseForSpeech(q.pick(complimentResponses)), true
		}
	}

	return "", false
}

func (q *QuickResponder) pick(pool []string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return pool[q.rng.Intn(len(pool))]
}
