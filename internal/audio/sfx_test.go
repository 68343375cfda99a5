package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"orbdash/internal/game"
)

func frames(t *testing.T, buf []byte) []float32 {
	t.Helper()
	if len(buf)%8 != 0 {
		t.Fatalf("buffer length %d is not whole stereo float32 frames", len(buf))
	}
	out := make([]float32, 0, len(buf)/4)
	for i := 0; i < len(buf); i += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
	}
	return out
}

func TestGeneratorsStayInRange(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() []byte
		maxDur float64
	}{
		{"collect", genCollect, 0.2},
		{"level-up", genLevelUp, 1.0},
		{"dash", genDash, 0.2},
		{"explosion", func() []byte { return genExplosion(42) }, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.gen()
			if len(buf) == 0 {
				t.Fatal("empty buffer")
			}
			if d := float64(len(buf)/8) / SampleRate; d > tt.maxDur {
				t.Errorf("duration %.2fs, want <= %.2fs", d, tt.maxDur)
			}
			var peak float64
			for i, s := range frames(t, buf) {
				v := math.Abs(float64(s))
				if math.IsNaN(v) || v > 1 {
					t.Fatalf("sample %d = %v out of [-1,1]", i, s)
				}
				peak = max(peak, v)
			}
			if peak < 0.05 {
				t.Errorf("peak %.3f, effect is inaudible", peak)
			}
		})
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	buf := genCollect()
	for i := 0; i < len(buf); i += 8 {
		if !bytes.Equal(buf[i:i+4], buf[i+4:i+8]) {
			t.Fatalf("frame %d: left and right differ", i/8)
		}
	}
}

func TestExplosionVariesWithSeed(t *testing.T) {
	if bytes.Equal(genExplosion(1), genExplosion(2)) {
		t.Fatal("different seeds produced identical explosions")
	}
	if !bytes.Equal(genExplosion(7), genExplosion(7)) {
		t.Fatal("same seed produced different explosions")
	}
}

func TestSoundReaderEOF(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("got %v", got)
	}
	if n, err := r.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Fatalf("Read after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestMutedEngineIsSilent(t *testing.T) {
	e, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	bus := game.NewEventBus()
	e.Attach(bus)
	// No device: every event must be a no-op.
	for _, typ := range []game.EventType{game.EventCollect, game.EventLevelUp, game.EventDash, game.EventDeath} {
		bus.Emit(game.Event{Type: typ})
	}
	if n := e.explosions.Load(); n != 0 {
		t.Fatalf("explosions in flight = %d, want 0", n)
	}
}

func TestSoundString(t *testing.T) {
	if got := SoundDash.String(); got != "dash" {
		t.Errorf("SoundDash.String() = %q", got)
	}
	if got := Sound(99).String(); got != "sound(99)" {
		t.Errorf("Sound(99).String() = %q", got)
	}
}
