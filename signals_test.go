package bindz

import "testing"

func TestStateChanged(t *testing.T) {
	if StateChanged.Name() != "bindz.state.changed" {
		t.Errorf("expected name 'bindz.state.changed', got %q", StateChanged.Name())
	}
}

func TestStateCombined(t *testing.T) {
	if StateCombined.Name() != "bindz.state.combined" {
		t.Errorf("expected name 'bindz.state.combined', got %q", StateCombined.Name())
	}
}

func TestBindingReentrant(t *testing.T) {
	if BindingReentrant.Name() != "bindz.binding.reentrant" {
		t.Errorf("expected name 'bindz.binding.reentrant', got %q", BindingReentrant.Name())
	}
}

func TestFeedStarted(t *testing.T) {
	if FeedStarted.Name() != "bindz.feed.started" {
		t.Errorf("expected name 'bindz.feed.started', got %q", FeedStarted.Name())
	}
}

func TestFeedStopped(t *testing.T) {
	if FeedStopped.Name() != "bindz.feed.stopped" {
		t.Errorf("expected name 'bindz.feed.stopped', got %q", FeedStopped.Name())
	}
}
