package wire

import (
	"bytes"
	"testing"
)

func TestSerializeJSONStringIfNeededBareForm(t *testing.T) {
	got := SerializeJSONStringIfNeeded([]byte("plainword"))
	if string(got) != "plainword" {
		t.Fatalf("got %q, want bare unquoted form", got)
	}
}

func TestSerializeJSONStringEscaping(t *testing.T) {
	input := []byte("a \"quote\"\nand\ttab")
	got := SerializeJSONString(input)
	want := `"a \"quote\"\nand\ttab"`
	if string(got) != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestJSONStringRoundTrip(t *testing.T) {
	input := []byte("has space and \"quote\" and \x01 control")
	encoded := SerializeJSONStringIfNeeded(input)
	decoded, consumed, err := DeserializeJSONStringIfNeeded(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(encoded) {
		t.Fatalf("consumed %d want %d", consumed, len(encoded))
	}
	if !bytes.Equal(decoded, input) {
		t.Fatalf("got %q want %q", decoded, input)
	}
}

func TestDeserializeJSONStringIfNeededBareTokenStopsAtSpace(t *testing.T) {
	decoded, consumed, err := DeserializeJSONStringIfNeeded([]byte("token rest of line"))
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "token" {
		t.Fatalf("got %q", decoded)
	}
	if consumed != len("token") {
		t.Fatalf("consumed %d", consumed)
	}
}

func TestDeserializeJSONStringRejectsUnterminated(t *testing.T) {
	if _, _, err := DeserializeJSONString([]byte(`"unterminated`)); err == nil {
		t.Fatal("expected error for a quoted string missing its closing quote")
	}
}
