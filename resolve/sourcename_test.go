package resolve

import "testing"

func TestJoinSource(t *testing.T) {
	cases := []struct {
		base, rel, want string
	}{
		{"contracts", "./File2.sol", "contracts/File2.sol"},
		{"contracts", "../File.sol", "File.sol"},
		{"contracts", "../../Outside.sol", "../Outside.sol"},
		{"", "../X.sol", "../X.sol"},
		{"a/b", "../../c", "c"},
	}
	for _, c := range cases {
		if got := joinSource(c.base, c.rel); got != c.want {
			t.Errorf("joinSource(%q, %q) = %q, want %q", c.base, c.rel, got, c.want)
		}
	}
}

func TestHasSourcePrefix(t *testing.T) {
	if !hasSourcePrefix("npm/dep@1.0.0/X.sol", "npm/dep@1.0.0/") {
		t.Fatal("expected prefix match")
	}
	if hasSourcePrefix("npm/dep2@1.0.0/X.sol", "npm/dep@1.0.0/") {
		t.Fatal("expected no match across package boundary")
	}
	if !hasSourcePrefix("contracts/File.sol", "contracts") {
		t.Fatal("expected boundary-aware match without trailing slash")
	}
	if hasSourcePrefix("contracts2/File.sol", "contracts") {
		t.Fatal("expected no match for contracts2 against contracts")
	}
}
