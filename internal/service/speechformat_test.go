package service

import (
	"strings"
	"testing"
)

func TestFormatExpandsAbbreviationsAndSymbols(t *testing.T) {
	got := FormatResponseForSpeech("e.g. this costs $5 > $3")
	want := "for example this costs $5 greater than $3"
	if got != want {
		t.Errorf("FormatResponseForSpeech() = %q, want %q", got, want)
	}
}

func TestFormatStripsMarkup(t *testing.T) {
	inputs := []string{
		"**bold** and _italic_ and `code` and ~~strike~~",
		"# Heading\nSome *emphasized* text",
		"Check [the manual](https://manual.bubble.io) for details",
		"> quoted advice\nregular text",
	}

	for _, input := range inputs {
		got := FormatResponseForSpeech(input)
		if strings.ContainsAny(got, "*_~#`") {
			t.Errorf("Output still contains markup characters: %q", got)
		}
		if strings.Contains(got, "http://") || strings.Contains(got, "https://") {
			t.Errorf("Output still contains a raw URL: %q", got)
		}
	}
}

func TestFormatReplacesURLs(t *testing.T) {
	got := FormatResponseForSpeech("see https://bubble.io/docs for more")
	if !strings.Contains(got, "the linked website") {
		t.Errorf("Expected URL to become 'the linked website', got %q", got)
	}
}

func TestFormatCompoundPhrasesBeforeHyphenSplit(t *testing.T) {
	got := FormatResponseForSpeech("Use the drop-down in the left-hand panel with drag-and-drop")
	for _, phrase := range []string{"drop down", "left hand", "drag and drop"} {
		if !strings.Contains(got, phrase) {
			t.Errorf("Expected %q in output, got %q", phrase, got)
		}
	}
	if strings.Contains(got, "-") {
		t.Errorf("Hyphen survived formatting: %q", got)
	}
}

func TestFormatSplitsCamelAndKebabCase(t *testing.T) {
	got := FormatResponseForSpeech("the pageLoad event fires on page-load")
	if !strings.Contains(got, "page Load") {
		t.Errorf("camelCase not split: %q", got)
	}
	if !strings.Contains(got, "page load") {
		t.Errorf("kebab-case not split: %q", got)
	}
}

func TestFormatExpandsAcronymsAndExtensions(t *testing.T) {
	got := FormatResponseForSpeech("Edit styles.css and check the API docs")
	if !strings.Contains(got, "C S S file") {
		t.Errorf("Extension not expanded: %q", got)
	}
	if !strings.Contains(got, "A P I") {
		t.Errorf("Acronym not expanded: %q", got)
	}
}

func TestFormatBulletsBecomeSpokenLeadIns(t *testing.T) {
	got := FormatResponseForSpeech("- add a button\n- add a workflow")
	if strings.Count(got, "Here is a point") != 2 {
		t.Errorf("Expected two spoken lead-ins, got %q", got)
	}
}

func TestFormatDropsOrdinalOpeners(t *testing.T) {
	got := FormatResponseForSpeech("First, open the editor. Then click save.")
	if strings.Contains(got, "First") || strings.Contains(got, "Then") {
		t.Errorf("Ordinal openers survived: %q", got)
	}
}

func TestFormatDeterministic(t *testing.T) {
	input := "## Setup\n1. install npm\n2. run the CLI, e.g. `vox serve`"
	if FormatResponseForSpeech(input) != FormatResponseForSpeech(input) {
		t.Error("Formatter output is not deterministic")
	}
}

func TestFormatCollapsesPunctuationRuns(t *testing.T) {
	got := FormatResponseForSpeech("Done!!! Now: save everything...")
	if strings.Contains(got, "..") || strings.Contains(got, "!!") || strings.Contains(got, ":") {
		t.Errorf("Punctuation runs not normalized: %q", got)
	}
}
