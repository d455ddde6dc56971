package normalize

import (
	"regexp"
	"strings"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

var (
	deobfuscator = strings.NewReplacer("@", "a", "3", "e", "0", "o", "$", "s", "5", "s")
	junkPattern  = regexp.MustCompile(`[^A-Za-z0-9\-.,& ]+`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Description cleans a free-text description: missing values become the
// sentinel, common character-level obfuscation is undone ("@"->a, "3"->e,
// "0"->o, "$"->s, "5"->s), junk characters are dropped, and whitespace runs
// collapse. Substitution only touches tokens that contain letters, so purely
// numeric tokens like invoice numbers survive. Best effort, not guaranteed.
func Description(raw string) string {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return model.Unspecified
	}

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if hasLetter(tok) {
			tokens[i] = deobfuscator.Replace(tok)
		}
	}
	s = strings.Join(tokens, " ")

	s = junkPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Account coerces the account field to text; missing values become the
// sentinel. No further transformation.
func Account(raw string) string {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return model.Unspecified
	}
	return s
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}
