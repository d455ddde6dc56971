package importer

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding labels reported by Decode.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingCP1252  = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode sniffs the byte encoding of a raw export and returns UTF-8 text
// plus the detected label. Detection is best-effort and never fails: BOMs
// win, then a UTF-8 validity check, then everything else is treated as
// Windows-1252 (a total decoding, so garbled input degrades silently
// rather than aborting the run).
func Decode(raw []byte) ([]byte, string) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], EncodingUTF8

	case bytes.HasPrefix(raw, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return raw, EncodingUTF8
		}
		return out, EncodingUTF16LE

	case bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return raw, EncodingUTF8
		}
		return out, EncodingUTF16BE

	case utf8.Valid(raw):
		return raw, EncodingUTF8

	default:
		dec := charmap.Windows1252.NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return raw, EncodingUTF8
		}
		return out, EncodingCP1252
	}
}
