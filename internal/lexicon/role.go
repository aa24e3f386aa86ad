package lexicon

// Role is a syntactic slot a word may occupy in a sentence.
type Role uint8

const (
	RoleNone Role = iota
	RoleSubject
	RoleObject
	RoleVerb
	RoleAdverb
)

// Roles lists the assignable roles in label order (the order option labels
// are drawn under a word).
var Roles = [4]Role{RoleSubject, RoleObject, RoleVerb, RoleAdverb}

func (r Role) String() string {
	switch r {
	case RoleSubject:
		return "subject"
	case RoleObject:
		return "object"
	case RoleVerb:
		return "verb"
	case RoleAdverb:
		return "adverb"
	}
	return "none"
}

// ParseRole converts a column or label name into a Role.
// Unknown names map to RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "subject", "s":
		return RoleSubject
	case "object", "o":
		return RoleObject
	case "verb", "v":
		return RoleVerb
	case "adverb", "a":
		return RoleAdverb
	}
	return RoleNone
}

// Rank orders roles canonically: subject, verb, object, adverb, then none.
func (r Role) Rank() int {
	switch r {
	case RoleSubject:
		return 0
	case RoleVerb:
		return 1
	case RoleObject:
		return 2
	case RoleAdverb:
		return 3
	}
	return 4
}

// Exclusive reports whether at most one sentence word may hold the role.
func (r Role) Exclusive() bool {
	return r == RoleSubject || r == RoleVerb
}

// Flags records which roles a word may take.
type Flags struct {
	Subject bool `json:"subject"`
	Object  bool `json:"object"`
	Verb    bool `json:"verb"`
	Adverb  bool `json:"adverb"`
}

// Has reports whether role r is flagged. RoleNone is never flagged.
func (f Flags) Has(r Role) bool {
	switch r {
	case RoleSubject:
		return f.Subject
	case RoleObject:
		return f.Object
	case RoleVerb:
		return f.Verb
	case RoleAdverb:
		return f.Adverb
	}
	return false
}

// Available returns the flagged roles in label order.
func (f Flags) Available() []Role {
	var out []Role
	for _, r := range Roles {
		if f.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of flagged roles.
func (f Flags) Count() int {
	n := 0
	for _, r := range Roles {
		if f.Has(r) {
			n++
		}
	}
	return n
}

// Only returns the single flagged role, or RoleNone when zero or several
// roles are flagged.
func (f Flags) Only() Role {
	avail := f.Available()
	if len(avail) != 1 {
		return RoleNone
	}
	return avail[0]
}

// FlagsOf returns the flag set with just r set.
func FlagsOf(r Role) Flags {
	var f Flags
	switch r {
	case RoleSubject:
		f.Subject = true
	case RoleObject:
		f.Object = true
	case RoleVerb:
		f.Verb = true
	case RoleAdverb:
		f.Adverb = true
	}
	return f
}
