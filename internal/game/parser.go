package game

import (
	"fmt"
	"strings"

	"github.com/Jorgelet/bingo-analisis/internal/dict"
)

// Banks maps each language to its validation dictionary. Banks are
// read-only configuration; the parser and session never mutate them.
type Banks map[Language]*dict.Dictionary

// ParseCards reads raw line-oriented card declarations and returns the
// accepted cards together with one human-readable error per rejected line.
// Parsing never aborts: malformed lines degrade to an error and the rest of
// the input is still processed.
//
// The format is hierarchical: a bare owner token (`J` followed by 1-8
// non-space characters) sets the owner for the card lines that follow it;
// every other non-blank line is `<id> <word> <word> ...` where the first two
// characters of the id select the language.
//
// knownIDs holds ids accepted by earlier loads; ids accepted here are added
// to it so duplicate detection spans the whole session.
func ParseCards(text string, banks Banks, knownIDs map[string]struct{}) ([]*Card, []string) {
	if knownIDs == nil {
		knownIDs = make(map[string]struct{})
	}

	var (
		cards  []*Card
		errs   []string
		owner  string
		inLoad = make(map[string]struct{})
	)

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isOwnerLine(line) {
			owner = line
			continue
		}

		if owner == "" {
			errs = append(errs, fmt.Sprintf("line %d: card found without an assigned player (missing Jx line above)", lineNo))
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			// An id with no words carries nothing to play; skipped without
			// an error, matching the historical behavior.
			continue
		}

		id := tokens[0]
		if len(id) < 3 {
			errs = append(errs, fmt.Sprintf("line %d: card id %q is too short", lineNo, id))
			continue
		}

		lang, ok := ParseLanguage(id[:2])
		if !ok {
			errs = append(errs, fmt.Sprintf("line %d: unknown language in card id %q", lineNo, id))
			continue
		}

		// Accepted ids land in both maps, so the in-load check must run
		// first: an id only in knownIDs came from an earlier load.
		if _, dup := inLoad[id]; dup {
			errs = append(errs, fmt.Sprintf("line %d: card id %q is duplicated in this input", lineNo, id))
			continue
		}
		if _, dup := knownIDs[id]; dup {
			errs = append(errs, fmt.Sprintf("line %d: card id %q already exists in previously loaded cards", lineNo, id))
			continue
		}

		words := tokens[1:]

		if repeated := repeatedWords(words); len(repeated) > 0 {
			errs = append(errs, fmt.Sprintf("line %d (%s): repeated words on card [%s]",
				lineNo, id, strings.Join(repeated, ", ")))
			continue
		}

		if max := lang.WordLimit(); len(words) > max {
			errs = append(errs, fmt.Sprintf("line %d (%s): exceeds the limit of %d words for %s",
				lineNo, id, max, lang))
			continue
		}

		// Fail closed: a card that cannot be validated is never admitted.
		bank := banks[lang]
		if bank.Len() == 0 {
			errs = append(errs, fmt.Sprintf("line %d: no word bank loaded for %s", lineNo, lang))
			continue
		}

		var invalid []string
		for _, w := range words {
			if !bank.Contains(w) {
				invalid = append(invalid, w)
			}
		}
		if len(invalid) > 0 {
			errs = append(errs, fmt.Sprintf("line %d (%s): words not in the %s bank [%s]",
				lineNo, id, lang, strings.Join(invalid, ", ")))
			continue
		}

		inLoad[id] = struct{}{}
		knownIDs[id] = struct{}{}
		cards = append(cards, NewCard(id, owner, lang, SortWords(words)))
	}

	return cards, errs
}

// isOwnerLine reports whether the line declares a player: `J` plus 1-8
// further characters without whitespace.
func isOwnerLine(line string) bool {
	return strings.HasPrefix(line, "J") &&
		len(line) > 1 && len(line) < 10 &&
		!strings.ContainsAny(line, " \t")
}

// repeatedWords returns the sorted set of words that appear more than once.
func repeatedWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	dups := make(map[string]struct{})
	for _, w := range words {
		if _, ok := seen[w]; ok {
			dups[w] = struct{}{}
		} else {
			seen[w] = struct{}{}
		}
	}
	if len(dups) == 0 {
		return nil
	}
	out := make([]string, 0, len(dups))
	for w := range dups {
		out = append(out, w)
	}
	return SortWords(out)
}
