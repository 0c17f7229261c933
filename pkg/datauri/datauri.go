// Package datauri converts between raw image payloads and self-describing
// data URIs. It is the single place the gateway encodes or decodes images.
package datauri

import (
	"encoding/base64"
	"errors"
	"regexp"
)

var pattern = regexp.MustCompile(`^data:([a-zA-Z]+\/[a-zA-Z0-9.+_-]+);base64,\s*(.+)$`)

// Encode wraps a payload into a data URI declaring its media type.
func Encode(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a data URI into its media type and payload.
func Decode(uri string) (string, []byte, error) {
	match := pattern.FindStringSubmatch(uri)

	if len(match) != 3 {
		return "", nil, errors.New("invalid data uri")
	}

	data, err := base64.StdEncoding.DecodeString(match[2])

	if err != nil {
		return "", nil, err
	}

	return match[1], data, nil
}
