package naming

import "testing"

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"user-profile": "UserProfile",
		"HTTPServer":   "HTTPServer",
		"9":            "_9",
		"a b c":        "ABC",
		"---":          "_",
	}
	for in, want := range cases {
		if got := Identifier(in); got != want {
			t.Fatalf("Identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPropertyKey(t *testing.T) {
	if got := PropertyKey("zip_code"); got != "zip_code" {
		t.Fatalf("got %q", got)
	}
	if got := PropertyKey("zip-code"); got != "'zip-code'" {
		t.Fatalf("got %q", got)
	}
	if got := PropertyKey("1a"); got != "'1a'" {
		t.Fatalf("got %q", got)
	}
}

func TestRegistry_Claim(t *testing.T) {
	var r Registry
	if n, c := r.Claim("User"); n != "User" || c {
		t.Fatalf("first claim: %q %v", n, c)
	}
	if n, c := r.Claim("User"); n != "User2" || !c {
		t.Fatalf("second claim: %q %v", n, c)
	}
	if n, _ := r.Claim("User"); n != "User3" {
		t.Fatalf("third claim: %q", n)
	}
}
