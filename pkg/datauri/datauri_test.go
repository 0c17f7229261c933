package datauri

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01, 0x02}

	uri := Encode("image/png", payload)

	mediaType, data, err := Decode(uri)

	if err != nil {
		t.Fatal(err)
	}

	if mediaType != "image/png" {
		t.Errorf("unexpected media type: %q", mediaType)
	}

	if !bytes.Equal(data, payload) {
		t.Error("payload changed during round trip")
	}
}

func TestDecodeMediaTypes(t *testing.T) {
	for _, mediaType := range []string{"image/png", "image/jpeg", "image/svg+xml", "image/x-icon"} {
		uri := Encode(mediaType, []byte("payload"))

		parsed, _, err := Decode(uri)

		if err != nil {
			t.Fatalf("%s: %v", mediaType, err)
		}

		if parsed != mediaType {
			t.Errorf("got %q, want %q", parsed, mediaType)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"data:image/png;base64",
		"data:;base64,aGVsbG8=",
		"https://example.com/image.png",
		"data:image/png;base64,not base64!!",
	}

	for _, input := range inputs {
		if _, _, err := Decode(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}
