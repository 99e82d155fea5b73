// Package timeparse extracts a time-of-day expression from free-form task text.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/akyairhashvil/focusday/internal/models"
)

// Result is the outcome of Parse. Time is unset when nothing was recognised.
type Result struct {
	Time     models.TimeOfDay
	Residual string
	// Match is the substring that was removed, empty when Time is unset.
	Match string
}

// Candidate is a matcher's leftmost hit in the text.
type Candidate struct {
	Start, End   int
	Hour, Minute int
}

// Matcher recognises one surface form.
type Matcher interface {
	Name() string
	Find(text string) (Candidate, bool)
}

var (
	colonRegex    = regexp.MustCompile(`(\d{1,2})[:：](\d{2})`)
	hourWordRegex = regexp.MustCompile(`(\d{1,2})[\s\p{Zs}]*点(?:[\s\p{Zs}]*(\d{1,2}|半)[\s\p{Zs}]*分?)?`)
)

type colonMatcher struct{}

func (colonMatcher) Name() string { return "colon" }

func (colonMatcher) Find(text string) (Candidate, bool) {
	loc := colonRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return Candidate{}, false
	}
	hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
	minute, _ := strconv.Atoi(text[loc[4]:loc[5]])
	return Candidate{Start: loc[0], End: loc[1], Hour: hour, Minute: minute}, true
}

type hourWordMatcher struct{}

func (hourWordMatcher) Name() string { return "hour-word" }

func (hourWordMatcher) Find(text string) (Candidate, bool) {
	loc := hourWordRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return Candidate{}, false
	}
	hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
	minute := 0
	if loc[4] >= 0 {
		qualifier := text[loc[4]:loc[5]]
		if qualifier == "半" {
			minute = 30
		} else {
			minute, _ = strconv.Atoi(qualifier)
		}
	}
	return Candidate{Start: loc[0], End: loc[1], Hour: hour, Minute: minute}, true
}

// ColonForm matches 18:00 and 18：00.
func ColonForm() Matcher { return colonMatcher{} }

// HourWordForm matches 6点, 6点30, 6点30分 and 6点半. Any space separator,
// including the ideographic space, may sit between the parts.
func HourWordForm() Matcher { return hourWordMatcher{} }

// Parser tries its matchers in order and honours only the leftmost candidate.
type Parser struct {
	matchers []Matcher
}

// New builds a parser. Earlier matchers win ties on start offset.
func New(matchers ...Matcher) *Parser {
	return &Parser{matchers: matchers}
}

// Default is the zh-CN grammar: colon form, then hour-word form.
var Default = New(ColonForm(), HourWordForm())

// Parse runs the Default parser.
func Parse(text string) Result {
	return Default.Parse(text)
}

// Parse finds the first time expression in text. An out-of-range candidate
// yields an unset time and the trimmed text; later candidates are ignored.
func (p *Parser) Parse(text string) Result {
	best, ok := p.first(text)
	if !ok {
		return Result{Residual: strings.TrimSpace(text)}
	}
	tod, err := models.NewTimeOfDay(best.Hour, best.Minute)
	if err != nil {
		return Result{Residual: strings.TrimSpace(text)}
	}
	return Result{
		Time:     tod,
		Residual: strings.TrimSpace(text[:best.Start] + text[best.End:]),
		Match:    text[best.Start:best.End],
	}
}

func (p *Parser) first(text string) (Candidate, bool) {
	var best Candidate
	found := false
	for _, m := range p.matchers {
		c, ok := m.Find(text)
		if !ok {
			continue
		}
		if !found || c.Start < best.Start {
			best = c
			found = true
		}
	}
	return best, found
}
