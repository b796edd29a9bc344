package progress

import "testing"

func TestProgressCallbackReportClamps(t *testing.T) {
	t.Parallel()
	var got []float64
	cb := ProgressCallback(func(v float64) { got = append(got, v) })

	cb.Report(-0.5)
	cb.Report(0.25)
	cb.Report(1.5)

	want := []float64{0, 0.25, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d reports, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("report %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProgressCallbackNilIsIgnored(t *testing.T) {
	t.Parallel()
	var cb ProgressCallback
	cb.Report(0.5) // must not panic
}

func TestChannelCallback(t *testing.T) {
	t.Parallel()

	t.Run("forwards updates with index", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := ChannelCallback(ch, 3)
		cb(0.5)
		update := <-ch
		if update.CalculatorIndex != 3 || update.Value != 0.5 {
			t.Errorf("unexpected update: %+v", update)
		}
	})

	t.Run("never blocks on a full channel", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate)
		cb := ChannelCallback(ch, 0)
		cb(0.1)
		cb(0.2)
	})

	t.Run("nil channel gives nil callback", func(t *testing.T) {
		t.Parallel()
		if ChannelCallback(nil, 0) != nil {
			t.Error("expected nil callback for nil channel")
		}
	})
}
