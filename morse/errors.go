package morse

import "strconv"

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnsupportedChar = Error("unsupported character")
	ErrUnknownSymbol   = Error("unknown symbol")
	ErrBusy            = Error("transmitter already active")
)

// EncodingError reports a message byte that has no Morse code.
type EncodingError struct {
	Char   byte
	Offset int // position in the message, -1 for a bare lookup
}

func (e *EncodingError) Error() string {
	msg := "morse: " + string(ErrUnsupportedChar) + " " + strconv.QuoteRune(rune(e.Char))
	if e.Offset >= 0 {
		msg += " at offset " + strconv.Itoa(e.Offset)
	}
	return msg
}

func (e *EncodingError) Unwrap() error { return ErrUnsupportedChar }

// SymbolError reports a byte in an encoded buffer that is not a dot, dash or space.
type SymbolError struct {
	Symbol byte
	Offset int
}

func (e *SymbolError) Error() string {
	return "morse: " + string(ErrUnknownSymbol) + " " + strconv.QuoteRune(rune(e.Symbol)) +
		" at offset " + strconv.Itoa(e.Offset)
}

func (e *SymbolError) Unwrap() error { return ErrUnknownSymbol }
