package status

import (
	"image/color"
	"testing"
	"time"

	"github.com/itohio/morselight/morse"
)

type fakeDisplay struct {
	w, h     int16
	pixels   int
	flushes  int
	outOfBox int
}

func (f *fakeDisplay) Size() (int16, int16) { return f.w, f.h }

func (f *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		f.outOfBox++
	}
	f.pixels++
}

func (f *fakeDisplay) Display() error {
	f.flushes++
	return nil
}

func TestLines(t *testing.T) {
	st := Status{
		Message:   "hola mundo",
		Symbols:   []byte("....  ---  "),
		Position:  6,
		State:     morse.Processing,
		Remaining: 3740 * time.Millisecond,
	}
	lines := Lines(st, 8)
	want := []string{"hola mun", "sending 6/11", "---  ", "eta 3.7s"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLinesIdle(t *testing.T) {
	lines := Lines(Status{Message: "e", Symbols: []byte(".  "), Position: -1}, 20)
	if lines[1] != "idle 0/3" || lines[2] != ".  " {
		t.Errorf("lines = %q", lines)
	}
}

func TestSnapshot(t *testing.T) {
	enc, err := morse.Encode("sos", 500)
	if err != nil {
		t.Fatal(err)
	}
	var snaps []Status
	var tx *morse.Transmitter
	tx = morse.NewTransmitter(nopPin{},
		morse.WithSleep(func(time.Duration) {}),
		morse.WithSymbolCallback(func(int, byte) {
			snaps = append(snaps, Snapshot("sos", enc.Symbols, tx))
		}),
	)

	idle := Snapshot("sos", enc.Symbols, tx)
	pt, _ := morse.Plan(enc.Symbols)
	if idle.State != morse.Idle || idle.Remaining != pt.Duration() {
		t.Errorf("idle snapshot = %+v", idle)
	}

	if _, err := tx.Transmit(enc.Symbols); err != nil {
		t.Fatal(err)
	}
	if len(snaps) != len(enc.Symbols) {
		t.Fatalf("got %d snapshots", len(snaps))
	}
	for i := 1; i < len(snaps); i++ {
		if snaps[i].Position != i || snaps[i].Remaining >= snaps[i-1].Remaining {
			t.Errorf("snapshot %d = %+v after %+v", i, snaps[i], snaps[i-1])
		}
	}
	if done := Snapshot("sos", enc.Symbols, tx); done.State != morse.Done || done.Remaining != 0 {
		t.Errorf("done snapshot = %+v", done)
	}
}

type nopPin struct{}

func (nopPin) High() {}
func (nopPin) Low()  {}

func TestScreenDraw(t *testing.T) {
	d := &fakeDisplay{w: 128, h: 64}
	s := NewScreen(d, White)
	if s.Columns() <= 0 || s.Columns() > 128 {
		t.Fatalf("columns = %d", s.Columns())
	}
	err := s.Draw(Status{Message: "sos", Symbols: []byte("...  "), State: morse.Processing, Remaining: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if d.pixels == 0 {
		t.Error("nothing drawn")
	}
	if d.flushes != 1 {
		t.Errorf("flushes = %d", d.flushes)
	}
}
