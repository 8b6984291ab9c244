// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tasks

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Match is a task that satisfied a palette query.
type Match struct {
	Task
	Score int // Higher is a better match
}

const (
	scoreExact      = 400
	scorePrefix     = 300
	scoreWordPrefix = 200
	scoreContains   = 100
	scoreSubseq     = 50
	noMatch         = -1
	// detail matches are worth less than name matches of the same kind.
	detailDivisor = 4
)

// Filter ranks ts against query.
// An empty query keeps every task in its original order with a zero score.
// Otherwise tasks whose name or detail do not match are dropped and the rest
// are sorted by score, then name.
func Filter(ts []Task, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	matches := make([]Match, 0, len(ts))

	if query == "" {
		for _, t := range ts {
			matches = append(matches, Match{Task: t})
		}

		return matches
	}

	for _, t := range ts {
		s := scoreText(t.Name, query, true)

		if ds := scoreText(t.Detail, query, false); ds > noMatch && ds/detailDivisor > s {
			s = ds / detailDivisor
		}

		if s == noMatch {
			continue
		}

		matches = append(matches, Match{Task: t, Score: s})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.Name, b.Name))
	})

	return matches
}

// scoreText scores text against an already lower-cased query.
// Shorter texts win ties inside a category.
func scoreText(text, query string, fuzzy bool) int {
	if text == "" {
		return noMatch
	}

	t := strings.ToLower(text)

	var s int

	switch {
	case t == query:
		return scoreExact
	case strings.HasPrefix(t, query):
		s = scorePrefix
	case hasWordPrefix(t, query):
		s = scoreWordPrefix
	case strings.Contains(t, query):
		s = scoreContains
	case fuzzy && isSubsequence(t, query):
		s = scoreSubseq
	default:
		return noMatch
	}

	// length penalty, capped so it never crosses into the category below
	return s + max(0, 40-utf8.RuneCountInString(t))
}

func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '.', '-', '_', ':', '/':
		return true
	}

	return false
}

// hasWordPrefix reports whether query starts a word of text other than the first.
func hasWordPrefix(text, query string) bool {
	prev := utf8.RuneError

	for i, r := range text {
		if i > 0 && isWordBoundary(prev) && strings.HasPrefix(text[i:], query) {
			return true
		}

		prev = r
	}

	return false
}

// isSubsequence compares whole runes so a multi-byte query never matches
// the bytes of unrelated characters.
func isSubsequence(text, query string) bool {
	q := []rune(query)
	if len(q) == 0 {
		return true
	}

	qi := 0

	for _, r := range text {
		if r == q[qi] {
			qi++
			if qi == len(q) {
				return true
			}
		}
	}

	return false
}
