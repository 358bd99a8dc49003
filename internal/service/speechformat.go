package service

import (
	"regexp"
	"strings"
)

// The formatter rewrites arbitrary response text into a form natural for
// text-to-speech playback. The steps are ordered: compound hyphenated phrases
// are substituted before generic hyphen splitting, extension and acronym
// expansion happen before punctuation normalization.

var (
	markdownLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	markdownCharsRe  = regexp.MustCompile("[*_~`#]")
	bulletRe         = regexp.MustCompile(`(?m)^\s*[-+•]\s+`)
	orderedListRe    = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`)
	blockQuoteRe     = regexp.MustCompile(`(?m)^\s*>\s*`)
	urlRe            = regexp.MustCompile(`https?://[^\s)\]]+|\bwww\.[^\s)\]]+`)
	punctuationRunRe = regexp.MustCompile(`[.!?]{2,}`)
	midSentenceRe    = regexp.MustCompile(`\s*[:;]\s*`)
	commaSpacingRe   = regexp.MustCompile(`\s*,\s*`)
	camelCaseRe      = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabCaseRe      = regexp.MustCompile(`([a-zA-Z])-([a-zA-Z])`)
	ordinalOpenerRe  = regexp.MustCompile(`(?m)(^|\. )(First|Second|Third|Fourth|Fifth|Next|Then)[,:]?\s+`)
	abbreviationRe   = regexp.MustCompile(`(?i)\b(w\.r\.t\.|e\.g\.|i\.e\.|etc\.|viz\.|vs\.|approx\.)`)
	fileExtensionRe  = regexp.MustCompile(`\.(jsx|tsx|js|ts|css|html|md|json|yml|yaml|env)\b`)
	acronymRe        = regexp.MustCompile(`\b(README|API|UI|CSS|HTML|URL|SDK|CLI|npm|AWS|SQL|IDE)\b`)
)

// Hyphenated compounds that must stay intact as phrases rather than being
// split word-by-word in the generic kebab-case pass.
var compoundPhrases = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)drag-and-drop`), "drag and drop"},
	{regexp.MustCompile(`(?i)step-by-step`), "step by step"},
	{regexp.MustCompile(`(?i)left-hand`), "left hand"},
	{regexp.MustCompile(`(?i)right-hand`), "right hand"},
	{regexp.MustCompile(`(?i)drop-down`), "drop down"},
}

var abbreviations = map[string]string{
	"e.g.":    "for example",
	"i.e.":    "that is",
	"etc.":    "et cetera",
	"viz.":    "namely",
	"vs.":     "versus",
	"w.r.t.":  "with respect to",
	"approx.": "approximately",
}

// Space-delimited operator expansions, longest first so that compound
// operators are not torn apart by their single-character pieces.
var spacedSymbols = []struct{ from, to string }{
	{" === ", " strictly equals "},
	{" !== ", " strictly not equals "},
	{" <= ", " less than or equal to "},
	{" >= ", " greater than or equal to "},
	{" == ", " equals "},
	{" != ", " not equals "},
	{" < ", " less than "},
	{" > ", " greater than "},
	{" + ", " plus "},
	{" - ", " minus "},
	{" * ", " times "},
	{" / ", " divided by "},
	{" % ", " percent "},
	{" = ", " equals "},
	{" & ", " and "},
	{" | ", " or "},
	{" ^ ", " to the power of "},
}

var unicodeSymbols = map[string]string{
	"√": " square root of ",
	"∑": " sum of ",
	"∏": " product of ",
	"∆": " delta ",
	"≈": " approximately ",
	"≠": " not equal to ",
	"±": " plus or minus ",
}

var fileExtensions = map[string]string{
	"js":   " JavaScript file",
	"ts":   " TypeScript file",
	"jsx":  " J S X file",
	"tsx":  " T S X file",
	"css":  " CSS file",
	"html": " HTML file",
	"md":   " markdown file",
	"json": " J S O N file",
	"yml":  " YAML file",
	"yaml": " YAML file",
	"env":  " environment file",
}

var acronyms = map[string]string{
	"README": "read me",
	"API":    "A P I",
	"UI":     "U I",
	"CSS":    "C S S",
	"HTML":   "H T M L",
	"URL":    "U R L",
	"SDK":    "S D K",
	"CLI":    "C L I",
	"npm":    "N P M",
	"AWS":    "A W S",
	"SQL":    "S Q L",
	"IDE":    "I D E",
}

// FormatResponseForSpeech rewrites response text for spoken playback.
// Deterministic, no external calls.
func FormatResponseForSpeech(text string) string {
	// 1. Markdown cleanup: unwrap link text, drop emphasis and heading marks.
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = markdownCharsRe.ReplaceAllString(text, "")

	// 2. List markers become spoken lead-ins; ordinal numbering is dropped.
	text = bulletRe.ReplaceAllString(text, "Here is a point: ")
	text = orderedListRe.ReplaceAllString(text, "")

	// 3. Compound phrases, before the generic hyphen split in step 10.
	for _, compound := range compoundPhrases {
		text = compound.pattern.ReplaceAllString(text, compound.replacement)
	}

	// 4. Abbreviations.
	text = abbreviationRe.ReplaceAllStringFunc(text, func(match string) string {
		if full, ok := abbreviations[strings.ToLower(match)]; ok {
			return full
		}
		return match
	})

	// 5. Mathematical and comparison symbols.
	for _, symbol := range spacedSymbols {
		text = strings.ReplaceAll(text, symbol.from, symbol.to)
	}
	for from, to := range unicodeSymbols {
		text = strings.ReplaceAll(text, from, to)
	}

	// 6. File extensions become spoken technology names.
	text = fileExtensionRe.ReplaceAllStringFunc(text, func(match string) string {
		if spoken, ok := fileExtensions[strings.TrimPrefix(match, ".")]; ok {
			return spoken
		}
		return match
	})

	// 7. Acronyms are spelled out letter by letter.
	text = acronymRe.ReplaceAllStringFunc(text, func(match string) string {
		if spoken, ok := acronyms[match]; ok {
			return spoken
		}
		return match
	})

	// 8. Ordinal transition words as sentence openers add nothing when spoken.
	text = ordinalOpenerRe.ReplaceAllString(text, "$1")

	// 9. Quote markers, URLs and punctuation runs.
	text = blockQuoteRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "the linked website")
	text = punctuationRunRe.ReplaceAllString(text, ".")
	text = midSentenceRe.ReplaceAllString(text, ". ")
	text = commaSpacingRe.ReplaceAllString(text, ", ")

	// 10. camelCase and kebab-case words read badly as single tokens.
	text = camelCaseRe.ReplaceAllString(text, "$1 $2")
	text = kebabCaseRe.ReplaceAllString(text, "$1 $2")

	// 11. Final cleanup: single spaces, single periods.
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	for strings.Contains(text, ". .") {
		text = strings.ReplaceAll(text, ". .", ".")
	}
	for strings.Contains(text, "..") {
		text = strings.ReplaceAll(text, "..", ".")
	}

	return text
}
