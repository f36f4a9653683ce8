package morse

import (
	"bytes"
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	want := map[byte]string{
		'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
		'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
		'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
		'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
		'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
		'z': "--..",
	}
	for c := byte('a'); c <= 'z'; c++ {
		got, err := Lookup(c)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c, err)
		}
		if got != want[c] {
			t.Errorf("Lookup(%q) = %q, want %q", c, got, want[c])
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, c := range []byte{'A', 'Z', '0', '9', '!', ' ', '`', '{', 0, 0xff} {
		_, err := Lookup(c)
		if !errors.Is(err, ErrUnsupportedChar) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnsupportedChar", c, err)
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) || encErr.Char != c || encErr.Offset != -1 {
			t.Errorf("Lookup(%q) error = %#v", c, err)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		msg       string
		capacity  int
		want      string
		consumed  int
		truncated bool
	}{
		{
			name:     "sos",
			msg:      "sos",
			capacity: 500,
			want:     "...  ---  ...  ",
			consumed: 3,
		},
		{
			name:     "word break",
			msg:      "a b",
			capacity: 500,
			want:     ".-    -...  ",
			consumed: 3,
		},
		{
			name:     "empty",
			msg:      "",
			capacity: 500,
			want:     "",
		},
		{
			name:     "nul terminates",
			msg:      "e\x00t",
			capacity: 500,
			want:     ".  ",
			consumed: 1,
		},
		{
			name:      "capacity below one token",
			msg:       "sos",
			capacity:  4,
			want:      "",
			truncated: true,
		},
		{
			name:      "capacity equal to one token",
			msg:       "sos",
			capacity:  5,
			want:      "",
			truncated: true,
		},
		{
			name:      "capacity fits one token",
			msg:       "sos",
			capacity:  6,
			want:      "...  ",
			consumed:  1,
			truncated: true,
		},
		{
			name:      "word break counts against capacity",
			msg:       "e e",
			capacity:  6,
			want:      ".    ",
			consumed:  2,
			truncated: true,
		},
		{
			name:      "zero capacity",
			msg:       "e",
			capacity:  0,
			want:      "",
			truncated: true,
		},
		{
			name:      "negative capacity",
			msg:       "e",
			capacity:  -3,
			want:      "",
			truncated: true,
		},
		{
			name:     "hola mundo",
			msg:      "hola mundo",
			capacity: 500,
			want:     "....  ---  .-..  .-    --  ..-  -.  -..  ---  ",
			consumed: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encode(tt.msg, tt.capacity)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if string(enc.Symbols) != tt.want {
				t.Errorf("Symbols = %q, want %q", enc.Symbols, tt.want)
			}
			if enc.Written != len(tt.want) {
				t.Errorf("Written = %d, want %d", enc.Written, len(tt.want))
			}
			if enc.Consumed != tt.consumed {
				t.Errorf("Consumed = %d, want %d", enc.Consumed, tt.consumed)
			}
			if enc.Truncated != tt.truncated {
				t.Errorf("Truncated = %v, want %v", enc.Truncated, tt.truncated)
			}
		})
	}
}

func TestEncodeNeverExceedsCapacity(t *testing.T) {
	msg := "the quick brown fox jumps over the lazy dog"
	for capacity := 0; capacity < 300; capacity++ {
		enc, err := Encode(msg, capacity)
		if err != nil {
			t.Fatalf("capacity %d: %v", capacity, err)
		}
		if capacity > 0 && len(enc.Symbols) >= capacity {
			t.Fatalf("capacity %d: wrote %d bytes", capacity, len(enc.Symbols))
		}
		if capacity == 0 && len(enc.Symbols) != 0 {
			t.Fatalf("capacity 0: wrote %d bytes", len(enc.Symbols))
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	for _, capacity := range []int{7, 20, 500} {
		a, errA := Encode("hola mundo", capacity)
		b, errB := Encode("hola mundo", capacity)
		if errA != nil || errB != nil {
			t.Fatalf("Encode: %v, %v", errA, errB)
		}
		if !bytes.Equal(a.Symbols, b.Symbols) || a.Written != b.Written || a.Truncated != b.Truncated {
			t.Errorf("capacity %d: %q != %q", capacity, a.Symbols, b.Symbols)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	enc, err := Encode("ab3c", 500)
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("error = %v, want *EncodingError", err)
	}
	if encErr.Char != '3' || encErr.Offset != 2 {
		t.Errorf("error = %+v", encErr)
	}
	if !errors.Is(err, ErrUnsupportedChar) {
		t.Errorf("errors.Is(%v, ErrUnsupportedChar) = false", err)
	}
	if string(enc.Symbols) != ".-  -...  " || enc.Consumed != 2 {
		t.Errorf("partial encoding = %q (consumed %d)", enc.Symbols, enc.Consumed)
	}
}

func TestAppendEncodedInPlace(t *testing.T) {
	var backing [32]byte
	enc, err := AppendEncoded(backing[:0], "et", len(backing))
	if err != nil {
		t.Fatal(err)
	}
	if string(enc.Symbols) != ".  -  " {
		t.Fatalf("Symbols = %q", enc.Symbols)
	}
	if &enc.Symbols[0] != &backing[0] {
		t.Error("encoder reallocated the destination buffer")
	}
}

func TestAppendEncodedKeepsPrefix(t *testing.T) {
	enc, err := AppendEncoded([]byte("x"), "e", 500)
	if err != nil {
		t.Fatal(err)
	}
	if string(enc.Symbols) != "x.  " || enc.Written != 3 {
		t.Errorf("Symbols = %q, Written = %d", enc.Symbols, enc.Written)
	}
}
