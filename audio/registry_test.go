// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
)

type namedDecoder struct {
	name string
}

func (d *namedDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New(d.name)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &namedDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_CaseAndDot(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &namedDecoder{name: "ogg"}
	registry.Register(".OGG", decoder)

	for _, key := range []string{"ogg", ".ogg", "Ogg"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &namedDecoder{name: "wav"}
	registry.Register("wav", wavDecoder)

	tests := []struct {
		path    string
		want    Decoder
		wantErr error
	}{
		{path: "samples/dots.wav", want: wavDecoder},
		{path: "/tmp/SHOUT.WAV", want: wavDecoder},
		{path: "notes.flac", wantErr: ErrUnknownFormat},
		{path: "README", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := registry.ForPath(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ForPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ForPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"wav", "mp3", "aiff", "ogg"} {
		registry.Register(f, &namedDecoder{name: f})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(string(rune('a'+i%26)), &namedDecoder{})
		}()
		go func() {
			defer wg.Done()
			registry.Get("a")
		}()
	}
	wg.Wait()

	if n := len(registry.Formats()); n != 26 {
		t.Errorf("Formats() has %d entries, want 26", n)
	}
}
