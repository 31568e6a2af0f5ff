package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestDerive_PBKDF2KnownAnswer(t *testing.T) {
	got, err := Derive("correct horse battery staple", "pepper-salt", AuthVersionPBKDF2)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	wantMK := "65d433d2bdea01f466d318564db61747911f539d9e0159acb8b8d8abcd4ecf9a"
	wantAuth := "bdc6f2d3f0c69ff3a28fba58f7ec6ec4ebd767165b668dd3c44e807363570326" +
		"dca564fb32f77bf279fd9f9e921fa699e6d032d629e5823fcd45f10e79dc2460"

	if string(got.MasterKey) != wantMK {
		t.Fatalf("master key = %s, want %s", got.MasterKey, wantMK)
	}
	if got.AuthSecret != wantAuth {
		t.Fatalf("auth secret = %s, want %s", got.AuthSecret, wantAuth)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	for _, v := range []AuthVersion{AuthVersionLegacy, AuthVersionPBKDF2, AuthVersionArgon2} {
		a, err := Derive("pw", "salt-salt-salt-salt", v)
		if err != nil {
			t.Fatalf("%s: Derive error: %v", v, err)
		}
		b, err := Derive("pw", "salt-salt-salt-salt", v)
		if err != nil {
			t.Fatalf("%s: Derive error: %v", v, err)
		}
		if a != b {
			t.Fatalf("%s: expected identical output for identical input", v)
		}
	}
}

func TestDerive_DifferentSaltChangesKeys(t *testing.T) {
	a, _ := Derive("pw", "salt-one", AuthVersionPBKDF2)
	b, _ := Derive("pw", "salt-two", AuthVersionPBKDF2)

	if a.MasterKey == b.MasterKey || a.AuthSecret == b.AuthSecret {
		t.Fatalf("expected different salts to give different credentials")
	}
}

func TestDerive_AuthSecretNeverContainsMasterKey(t *testing.T) {
	got, err := Derive("pw", "salt", AuthVersionPBKDF2)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if strings.Contains(got.AuthSecret, string(got.MasterKey)) {
		t.Fatalf("auth secret leaks the master key")
	}
	if len(got.MasterKey) != 64 || len(got.AuthSecret) != 128 {
		t.Fatalf("unexpected lengths: mk=%d auth=%d", len(got.MasterKey), len(got.AuthSecret))
	}
}

func TestDerive_LegacyIgnoresSalt(t *testing.T) {
	a, _ := Derive("hunter2", "one", AuthVersionLegacy)
	b, _ := Derive("hunter2", "two", AuthVersionLegacy)
	if a != b {
		t.Fatalf("legacy derivation must not depend on the salt")
	}
	if a.MasterKey != "e9ca5052167565304081c5a50faf9b36f95a989b" {
		t.Fatalf("legacy master key = %s", a.MasterKey)
	}
	if !strings.HasPrefix(a.AuthSecret, "beeb16d2fc5146d1") {
		t.Fatalf("legacy auth secret = %s", a.AuthSecret)
	}
}

func TestDerive_Argon2Lengths(t *testing.T) {
	got, err := Derive("pw", strings.Repeat("s", 256), AuthVersionArgon2)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if len(got.MasterKey) != 64 || len(got.AuthSecret) != 64 {
		t.Fatalf("unexpected lengths: mk=%d auth=%d", len(got.MasterKey), len(got.AuthSecret))
	}
}

func TestDerive_UnknownVersion(t *testing.T) {
	for _, v := range []AuthVersion{0, 4, 99, -1} {
		_, err := Derive("pw", "salt", v)
		if !errors.Is(err, ErrUnsupportedAuthVersion) {
			t.Fatalf("version %d: err = %v, want ErrUnsupportedAuthVersion", v, err)
		}
	}
}

func TestGenerateAccountSalt(t *testing.T) {
	s1, err := GenerateAccountSalt()
	if err != nil {
		t.Fatalf("GenerateAccountSalt error: %v", err)
	}
	s2, _ := GenerateAccountSalt()

	if len(s1) != AccountSaltLength {
		t.Fatalf("salt length = %d, want %d", len(s1), AccountSaltLength)
	}
	if s1 == s2 {
		t.Fatalf("expected salts to differ")
	}
	for _, c := range s1 {
		if !strings.ContainsRune(alphanumeric, c) {
			t.Fatalf("unexpected salt character %q", c)
		}
	}
}
