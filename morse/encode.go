package morse

// gap separates letters and marks word breaks.
const gap = "  "

// Encoded describes the outcome of encoding a message.
type Encoded struct {
	Symbols   []byte // encoded buffer
	Written   int    // bytes appended by the encoder
	Consumed  int    // message bytes that were encoded
	Truncated bool   // capacity ran out before the end of the message
}

// Encode converts msg into Morse symbols, writing at most capacity-1 bytes.
// See AppendEncoded.
func Encode(msg string, capacity int) (Encoded, error) {
	if capacity < 0 {
		capacity = 0
	}
	return AppendEncoded(make([]byte, 0, capacity), msg, capacity)
}

// AppendEncoded appends the Morse form of msg to dst.
//
// Every letter becomes its code followed by two spaces, and every space in
// msg becomes two spaces. A NUL byte ends the message. An append is only
// made while the number of bytes written stays below capacity, keeping
// room for a terminator; once that fails the rest of the message is
// dropped and Truncated is set. A byte with no code stops encoding with an
// *EncodingError and the symbols written so far.
func AppendEncoded(dst []byte, msg string, capacity int) (Encoded, error) {
	start := len(dst)
	res := Encoded{Symbols: dst}

	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c == 0 {
			break
		}

		var code string
		if c != Space {
			var err error
			if code, err = Lookup(c); err != nil {
				return res, &EncodingError{Char: c, Offset: i}
			}
		}

		if res.Written+len(code)+len(gap) >= capacity {
			res.Truncated = true
			break
		}
		dst = append(dst, code...)
		dst = append(dst, gap...)
		res.Written = len(dst) - start
		res.Symbols = dst
		res.Consumed = i + 1
	}

	return res, nil
}
