// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestAnalyze_WindowCount(t *testing.T) {
	t.Parallel()

	// 1 second at 44.1kHz analyzed for 10kHz playback: 10000 windows
	signal := make([]float32, 44100)

	frames, err := Analyze(signal, 44100, 10000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(frames) != 10000 {
		t.Errorf("len(frames) = %d, want 10000", len(frames))
	}
}

func TestAnalyze_WindowCountRounds(t *testing.T) {
	t.Parallel()

	// 0.35 ms at 80kHz for 10kHz playback: round(0.00035*10000) = 4 windows
	signal := make([]float32, 28)

	frames, err := Analyze(signal, 80000, 10000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(frames) != 4 {
		t.Errorf("len(frames) = %d, want 4", len(frames))
	}
}

func TestAnalyze_SineDominantFrequency(t *testing.T) {
	t.Parallel()

	// One window covering the whole signal: 0.1s at 8kHz, playback 10Hz
	const rate = 8000
	signal := make([]float32, 800)
	for i := range signal {
		ts := float64(i) / rate
		signal[i] = float32(math.Sin(2 * math.Pi * 1000 * ts))
	}

	frames, err := Analyze(signal, rate, 10)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}

	// 800 bins over 8kHz: 10Hz resolution, peak expected at 1000Hz
	if math.Abs(frames[0].Frequency-1000) > 10 {
		t.Errorf("Frequency = %v, want ≈1000", frames[0].Frequency)
	}

	// Peak magnitude of a unit sine over n whole periods is n/2
	if math.Abs(frames[0].Magnitude-400) > 1 {
		t.Errorf("Magnitude = %v, want ≈400", frames[0].Magnitude)
	}
}

func TestAnalyze_ConstantSignalIsDC(t *testing.T) {
	t.Parallel()

	signal := make([]float32, 400)
	for i := range signal {
		signal[i] = 0.5
	}

	frames, err := Analyze(signal, 4000, 10)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}

	if frames[0].Frequency != 0 {
		t.Errorf("Frequency = %v, want 0", frames[0].Frequency)
	}

	// DC bin of a constant signal is n*value
	if math.Abs(frames[0].Magnitude-200) > 1e-6 {
		t.Errorf("Magnitude = %v, want 200", frames[0].Magnitude)
	}
}

func TestAnalyze_SingleSampleWindows(t *testing.T) {
	t.Parallel()

	// As many windows as samples: every window is one sample
	signal := []float32{0.1, 0.2, 0.3, 0.4}

	frames, err := Analyze(signal, 4, 1)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(frames) != 4 {
		t.Fatalf("len(frames) = %d, want 4", len(frames))
	}

	for i, f := range frames {
		if f.Frequency != 0 {
			t.Errorf("frames[%d].Frequency = %v, want 0", i, f.Frequency)
		}
		want := float64(signal[i])
		if math.Abs(f.Magnitude-want) > 1e-6 {
			t.Errorf("frames[%d].Magnitude = %v, want %v", i, f.Magnitude, want)
		}
	}
}

func TestAnalyze_SilentSignal(t *testing.T) {
	t.Parallel()

	signal := make([]float32, 441)

	frames, err := Analyze(signal, 44100, 10000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for i, f := range frames {
		if f.Magnitude != 0 {
			t.Errorf("frames[%d].Magnitude = %v, want 0", i, f.Magnitude)
		}
	}
}

func TestAnalyze_WorkerCountInvariant(t *testing.T) {
	t.Parallel()

	signal := make([]float32, 4410)
	for i := range signal {
		ts := float64(i) / 44100
		v := math.Sin(2*math.Pi*440*ts) + 0.3*math.Sin(2*math.Pi*1760*ts)
		if v < 0 {
			v = 0
		}
		signal[i] = float32(v)
	}

	serial, err := Analyze(signal, 44100, 10000, WithWorkers(1))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	parallel, err := Analyze(signal, 44100, 10000, WithWorkers(8))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(serial) != len(parallel) {
		t.Fatalf("frame counts differ: %d vs %d", len(serial), len(parallel))
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("frames[%d] differs across worker counts: %+v vs %+v",
				i, serial[i], parallel[i])
		}
	}
}

func TestAnalyze_Progress(t *testing.T) {
	t.Parallel()

	signal := make([]float32, 441)

	var mu sync.Mutex
	calls := 0
	final := 0

	_, err := Analyze(signal, 44100, 10000, WithProgress(func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if done > final {
			final = done
		}
		if total != 100 {
			t.Errorf("progress total = %d, want 100", total)
		}
	}))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if calls != 100 {
		t.Errorf("progress calls = %d, want 100", calls)
	}
	if final != 100 {
		t.Errorf("final done = %d, want 100", final)
	}
}

func TestAnalyze_EmptySignal(t *testing.T) {
	t.Parallel()

	if _, err := Analyze(nil, 44100, 10000); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("Analyze() error = %v, want ErrEmptySignal", err)
	}
}

func TestAnalyze_InvalidRates(t *testing.T) {
	t.Parallel()

	signal := []float32{0.1}

	if _, err := Analyze(signal, 0, 10000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Analyze(rate=0) error = %v, want ErrInvalidRate", err)
	}

	if _, err := Analyze(signal, 44100, 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Analyze(playback=0) error = %v, want ErrInvalidRate", err)
	}
}

func TestWindowBounds_SplitAsEqualAsPossible(t *testing.T) {
	t.Parallel()

	// 10 samples into 3 windows: sizes 4, 3, 3 with the larger windows first
	wantSizes := []int{4, 3, 3}

	prev := 0
	for x, want := range wantSizes {
		start, end := windowBounds(10, 3, x)
		if start != prev {
			t.Errorf("window %d start = %d, want %d", x, start, prev)
		}
		if end-start != want {
			t.Errorf("window %d size = %d, want %d", x, end-start, want)
		}
		prev = end
	}

	if prev != 10 {
		t.Errorf("windows cover %d samples, want 10", prev)
	}
}

func TestWindowBounds_CoversSignalExactly(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, count int }{
		{44100, 10000},
		{100, 7},
		{5, 5},
		{3, 7},
	} {
		prev := 0
		minSize, maxSize := tc.n, 0
		for x := 0; x < tc.count; x++ {
			start, end := windowBounds(tc.n, tc.count, x)
			if start != prev {
				t.Fatalf("n=%d count=%d: window %d start = %d, want %d",
					tc.n, tc.count, x, start, prev)
			}
			size := end - start
			if size < minSize {
				minSize = size
			}
			if size > maxSize {
				maxSize = size
			}
			prev = end
		}
		if prev != tc.n {
			t.Errorf("n=%d count=%d: covered %d samples", tc.n, tc.count, prev)
		}
		if maxSize-minSize > 1 {
			t.Errorf("n=%d count=%d: window sizes range %d..%d, want spread <= 1",
				tc.n, tc.count, minSize, maxSize)
		}
	}
}

func TestBinFrequency(t *testing.T) {
	t.Parallel()

	// 4-bin axis at 44.1kHz: bins 0,1 positive, bins 2,3 negative aliases
	rate := 44100

	if f := binFrequency(0, 4, rate); f != 0 {
		t.Errorf("binFrequency(0) = %v, want 0", f)
	}
	if f := binFrequency(1, 4, rate); math.Abs(f-11025) > 1e-9 {
		t.Errorf("binFrequency(1) = %v, want 11025", f)
	}
	if f := binFrequency(2, 4, rate); math.Abs(f+22050) > 1e-9 {
		t.Errorf("binFrequency(2) = %v, want -22050", f)
	}
	if f := binFrequency(3, 4, rate); math.Abs(f+11025) > 1e-9 {
		t.Errorf("binFrequency(3) = %v, want -11025", f)
	}

	// Odd axis: 5 bins, positive up to index 2
	if f := binFrequency(2, 5, rate); math.Abs(f-17640) > 1e-9 {
		t.Errorf("binFrequency(2, 5) = %v, want 17640", f)
	}
	if f := binFrequency(3, 5, rate); math.Abs(f+17640) > 1e-9 {
		t.Errorf("binFrequency(3, 5) = %v, want -17640", f)
	}
}
