package jolly

import (
	"testing"

	"github.com/chromedp/chromedp"
)

func TestUserAgentPoolAppendsOneOption(t *testing.T) {
	var pickedN int
	pool := NewUserAgentPool([]string{"agent-a", "agent-b", "agent-c"})
	pool.pick = func(n int) int {
		pickedN = n
		return 1
	}

	opts := pool.Apply(nil)
	if len(opts) != 1 {
		t.Fatalf("options appended: got %d, want 1", len(opts))
	}
	if pickedN != 3 {
		t.Errorf("pick range: got %d, want 3", pickedN)
	}
}

func TestUserAgentPoolEmptyIsNoOp(t *testing.T) {
	pool := NewUserAgentPool(nil)

	base := []chromedp.ExecAllocatorOption{chromedp.Flag("headless", true)}
	if opts := pool.Apply(base); len(opts) != len(base) {
		t.Errorf("empty pool must not change options: got %d, want %d", len(opts), len(base))
	}
}

func TestProxyPoolAppendsOneOption(t *testing.T) {
	pool := NewProxyPool([]string{"https://proxy-one:3128", "https://proxy-two:3128"})
	pool.pick = func(n int) int { return n - 1 }

	opts := pool.Apply(nil)
	if len(opts) != 1 {
		t.Fatalf("options appended: got %d, want 1", len(opts))
	}
}

func TestProxyPoolEmptyIsNoOp(t *testing.T) {
	pool := NewProxyPool(nil)
	if opts := pool.Apply(nil); len(opts) != 0 {
		t.Errorf("empty pool must not append options: got %d", len(opts))
	}
}

func TestDecoratorsCompose(t *testing.T) {
	ua := NewUserAgentPool([]string{"agent-a"})
	proxy := NewProxyPool([]string{"https://proxy-one:3128"})

	var opts []chromedp.ExecAllocatorOption
	for _, d := range []SessionDecorator{ua, proxy} {
		opts = d.Apply(opts)
	}
	if len(opts) != 2 {
		t.Errorf("composed options: got %d, want 2", len(opts))
	}
}
