// Package morse encodes lowercase text as International Morse code and
// transmits the result by toggling a single output pin.
package morse

const (
	Dot   = '.'
	Dash  = '-'
	Space = ' '
)

// alphabet holds the codes for 'a' through 'z', in order.
var alphabet = [26]string{
	".-", "-...", "-.-.", "-..", ".", "..-.", "--.", "....", "..", ".---",
	"-.-", ".-..", "--", "-.", "---", ".--.", "--.-", ".-.", "...", "-",
	"..-", "...-", ".--", "-..-", "-.--", "--..",
}

// Lookup returns the Morse code of a lowercase latin letter.
func Lookup(letter byte) (string, error) {
	if letter < 'a' || letter > 'z' {
		return "", &EncodingError{Char: letter, Offset: -1}
	}
	return alphabet[letter-'a'], nil
}
