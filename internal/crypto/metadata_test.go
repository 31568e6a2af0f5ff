package crypto

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestEncryptMetadata_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"name":"a.txt","size":12,"mime":"text/plain","key":"k","lastModified":1700000000000}`,
		"",
		"ünïcødé 文件名",
		strings.Repeat("x", 10_000),
	}

	for _, in := range inputs {
		blob, err := EncryptMetadata(in, testKey)
		if err != nil {
			t.Fatalf("EncryptMetadata error: %v", err)
		}
		if !strings.HasPrefix(string(blob), MetadataVersionGCM) {
			t.Fatalf("blob %q lacks version prefix", blob[:8])
		}

		out, err := DecryptMetadata(blob, testKey)
		if err != nil {
			t.Fatalf("DecryptMetadata error: %v", err)
		}
		if out != in {
			t.Fatalf("round trip mismatch: got %q want %q", out, in)
		}
	}
}

func TestEncryptMetadata_FreshNonce(t *testing.T) {
	a, _ := EncryptMetadata("same", testKey)
	b, _ := EncryptMetadata("same", testKey)
	if a == b {
		t.Fatalf("expected different blobs for repeated encryption")
	}
}

func TestDecryptMetadata_WrongKey(t *testing.T) {
	blob, err := EncryptMetadata("secret", testKey)
	if err != nil {
		t.Fatalf("EncryptMetadata error: %v", err)
	}

	_, err = DecryptMetadata(blob, strings.Repeat("f", 64))
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
}

func TestDecryptMetadata_Malformed(t *testing.T) {
	cases := map[string]struct {
		blob EncryptedString
		want error
	}{
		"empty":         {"", ErrMalformedMetadata},
		"short":         {"00", ErrMalformedMetadata},
		"nonce only":    {"002abcdefghijkl", ErrMalformedMetadata},
		"bad base64":    {"002abcdefghijkl!!!not-base64", ErrMalformedMetadata},
		"short tag":     {"002abcdefghijklAAAA", ErrMalformedMetadata},
		"unknown":       {"009abcdefghijklAAAAAAAAAAAAAAAAAAAAAAA==", ErrUnknownMetadataVersion},
		"legacy broken": {"U2FsdGVkX1", ErrMalformedMetadata},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecryptMetadata(tc.blob, testKey)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecryptMetadata_EmptyKey(t *testing.T) {
	if _, err := EncryptMetadata("x", ""); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("encrypt err = %v, want ErrEmptyKey", err)
	}
	if _, err := DecryptMetadata("002abcdefghijklAAAA", ""); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("decrypt err = %v, want ErrEmptyKey", err)
	}
}

// Produced with: openssl enc -aes-256-cbc -md md5 -S 0102030405060708 -pass pass:legacy-master-key
const legacyBlob = "U2FsdGVkX18BAgMEBQYHCHQ+C9WwKdvdSQbuKVvrFU9jEy/9YpxwieMkbufFO9jK"

func TestDecryptMetadata_Legacy(t *testing.T) {
	out, err := DecryptMetadata(legacyBlob, "legacy-master-key")
	if err != nil {
		t.Fatalf("DecryptMetadata error: %v", err)
	}
	if out != `{"name":"report.pdf","size":42}` {
		t.Fatalf("legacy plaintext = %q", out)
	}
}

func TestDecryptMetadata_LegacyWrongKey(t *testing.T) {
	out, err := DecryptMetadata(legacyBlob, "another-key")
	if err == nil && out == `{"name":"report.pdf","size":42}` {
		t.Fatalf("wrong key must not reveal the plaintext")
	}
}

// TestMasterKeyRing_DecryptLegacyBehindNewerKeys tries the legacy blob with
// many newer keys in front of the right one. Some of them (rotated-key-200
// and rotated-key-361) produce valid CBC padding.
func TestMasterKeyRing_DecryptLegacyBehindNewerKeys(t *testing.T) {
	for i := 0; i < 512; i++ {
		newer := MasterKey(fmt.Sprintf("rotated-key-%d", i))

		out, err := NewMasterKeyRing("legacy-master-key", newer).Decrypt(legacyBlob)
		if err != nil {
			t.Fatalf("%s: Decrypt error: %v", newer, err)
		}
		if out != `{"name":"report.pdf","size":42}` {
			t.Fatalf("%s: legacy plaintext = %q", newer, out)
		}
	}
}

func TestDecryptMetadata_LegacyPaddingOnlyMatch(t *testing.T) {
	_, err := DecryptMetadata(legacyBlob, "rotated-key-200")
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
}
