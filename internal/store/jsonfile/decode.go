package jsonfile

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// legacyEncodings is the prioritized decode list for documents written
// by older revisions of the bot, which persisted in whatever encoding
// the host happened to use.
var legacyEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// decodeDocument unmarshals a persisted JSON document, recovering
// legacy non-UTF8 files by re-decoding through the prioritized
// encoding list and taking the first attempt that yields valid JSON.
func decodeDocument(data []byte, v interface{}) error {
	if utf8.Valid(data) {
		return json.Unmarshal(data, v)
	}

	var firstErr error
	for _, candidate := range legacyEncodings {
		decoded, _, err := transform.Bytes(candidate.enc.NewDecoder(), data)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", candidate.name, err)
			}
			continue
		}
		if err := json.Unmarshal(decoded, v); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", candidate.name, err)
			}
			continue
		}
		return nil
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("document is not valid JSON in any known encoding")
	}
	return firstErr
}
