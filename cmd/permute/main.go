// permute prints every phrasing of a sentence without starting the
// exhibit. Build:
//
//	go build -o permute ./cmd/permute
//
// Usage:
//
//	./permute [-lexicon vocabulary.csv] [-limit 50] aun:subject vel ema:object
//
// A word without a role suffix takes its only role when it has exactly
// one; role suffixes are subject, object, verb, adverb or s, o, v, a.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"logosphere/assets"
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"logosphere/internal/permute"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("permute: ")

	lexPath := flag.String("lexicon", "", "Path to a vocabulary CSV (embedded vocabulary when empty)")
	limit := flag.Int("limit", 50, "Maximum permutations to print; 0 prints all")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store, err := openStore(*lexPath)
	if err != nil {
		log.Fatal(err)
	}
	words, err := parseWords(flag.Args(), store)
	if err != nil {
		log.Fatal(err)
	}
	out := termenv.NewOutput(os.Stdout)
	printPermutations(out, store, words, *limit)
}

func openStore(path string) (*lexicon.Store, error) {
	var (
		entries []lexicon.Entry
		err     error
	)
	if path != "" {
		entries, err = lexicon.LoadFile(path)
	} else {
		var f io.ReadCloser
		if f, err = assets.FS.Open(assets.VocabularyFile); err != nil {
			return nil, err
		}
		defer f.Close()
		entries, err = lexicon.Load(f)
	}
	if err != nil {
		return nil, err
	}
	return lexicon.NewStore(entries), nil
}

var errExclusive = errors.New("role already taken")

// parseWords turns word[:role] arguments into sentence words.
func parseWords(args []string, store *lexicon.Store) ([]event.Word, error) {
	held := map[lexicon.Role]string{}
	words := make([]event.Word, 0, len(args))
	for _, arg := range args {
		text, roleName, hasRole := strings.Cut(arg, ":")
		e, ok := store.Lookup(text)
		if !ok {
			return nil, fmt.Errorf("unknown word %q", text)
		}
		role := e.Roles.Only()
		if hasRole {
			role = lexicon.ParseRole(strings.ToLower(roleName))
			if role == lexicon.RoleNone {
				return nil, fmt.Errorf("%s: unknown role %q", text, roleName)
			}
			if !e.Roles.Has(role) {
				return nil, fmt.Errorf("%s cannot be a %s", text, role)
			}
		}
		if role.Exclusive() {
			if other, taken := held[role]; taken {
				return nil, fmt.Errorf("%s as %s: %w by %s", text, role, errExclusive, other)
			}
			held[role] = text
		}
		words = append(words, event.NewWord(e.Word, e.Translation, role))
	}
	return words, nil
}

// printPermutations writes the canonical sentence, the count and up to
// limit permutations.
func printPermutations(out *termenv.Output, store *lexicon.Store, words []event.Word, limit int) {
	header := out.String().Bold()
	dim := out.String().Faint()

	var parts []string
	for _, w := range permute.Canonical(words) {
		parts = append(parts, fmt.Sprintf("%s%s", w.Text, dim.Styled("("+w.Role.String()+")")))
	}
	fmt.Fprintln(out, strings.Join(parts, " "))

	seq := permute.Build(words, store)
	fmt.Fprintln(out, header.Styled(fmt.Sprintf("%d permutations", seq.Len())))
	if limit <= 0 {
		limit = -1
	}
	lines := seq.Collect(limit)
	width := len(fmt.Sprint(len(lines)))
	for i, p := range lines {
		num := out.String(fmt.Sprintf("%*d", width, i+1)).Foreground(out.Color("3"))
		fmt.Fprintf(out, "%s  %s\n", num, strings.Join(p, " "))
	}
	if rest := seq.Len() - len(lines); rest > 0 {
		fmt.Fprintln(out, dim.Styled(fmt.Sprintf("... %d more", rest)))
	}
}
