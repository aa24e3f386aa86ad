package main

import (
	"bytes"
	"errors"
	"logosphere/internal/lexicon"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func testStore() *lexicon.Store {
	return lexicon.NewStore([]lexicon.Entry{
		{Word: "aun", Translation: "person", Roles: lexicon.Flags{Subject: true, Object: true}},
		{Word: "orin", Translation: "person", Roles: lexicon.Flags{Subject: true}},
		{Word: "vel", Translation: "communication", Roles: lexicon.Flags{Verb: true}},
		{Word: "naoven", Translation: "communication", Roles: lexicon.Flags{Verb: true}},
		{Word: "ema", Translation: "unity", Roles: lexicon.Flags{Subject: true, Object: true}},
	})
}

func TestParseWords(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		roles []lexicon.Role
		fail  bool
	}{
		{"explicit roles", []string{"aun:subject", "vel"}, []lexicon.Role{lexicon.RoleSubject, lexicon.RoleVerb}, false},
		{"short role", []string{"ema:o"}, []lexicon.Role{lexicon.RoleObject}, false},
		{"no role for two-role word", []string{"aun"}, []lexicon.Role{lexicon.RoleNone}, false},
		{"case-folded word", []string{"AUN:S"}, []lexicon.Role{lexicon.RoleSubject}, false},
		{"unknown word", []string{"zzz"}, nil, true},
		{"unknown role", []string{"aun:noun"}, nil, true},
		{"role not offered", []string{"vel:subject"}, nil, true},
		{"two subjects", []string{"aun:s", "ema:s"}, nil, true},
		{"two verbs", []string{"vel", "naoven"}, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			words, err := parseWords(tc.args, testStore())
			if tc.fail {
				if err == nil {
					t.Fatalf("parseWords(%v) succeeded", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWords(%v): %v", tc.args, err)
			}
			for i, w := range words {
				if w.Role != tc.roles[i] {
					t.Errorf("word %d role = %v, want %v", i, w.Role, tc.roles[i])
				}
			}
		})
	}

	_, err := parseWords([]string{"vel", "naoven"}, testStore())
	if !errors.Is(err, errExclusive) {
		t.Errorf("two verbs error = %v, want errExclusive", err)
	}
}

func TestPrintPermutations(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	words, err := parseWords([]string{"vel", "aun:subject"}, testStore())
	if err != nil {
		t.Fatal(err)
	}

	printPermutations(out, testStore(), words, 3)
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"aun(subject) vel(verb)",
		"4 permutations",
		"1  aun vel",
		"2  aun naoven",
		"3  orin vel",
		"... 1 more",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	buf.Reset()
	printPermutations(out, testStore(), words, 0)
	if n := strings.Count(buf.String(), "\n"); n != 6 {
		t.Errorf("unlimited output has %d lines, want 6", n)
	}
}
