package jolly

import (
	"math/rand"

	"github.com/chromedp/chromedp"
)

// SessionDecorator adjusts the browser session before launch. Decorators
// are independent and composable: each appends its own allocator options
// and knows nothing about the others.
type SessionDecorator interface {
	Apply(opts []chromedp.ExecAllocatorOption) []chromedp.ExecAllocatorOption
}

// UserAgentPool assigns a randomly chosen User-Agent to the session. An
// empty pool leaves the session untouched.
type UserAgentPool struct {
	agents []string
	pick   func(n int) int
}

// NewUserAgentPool creates a pool over the given agents.
func NewUserAgentPool(agents []string) *UserAgentPool {
	return &UserAgentPool{agents: agents, pick: rand.Intn}
}

func (p *UserAgentPool) Apply(opts []chromedp.ExecAllocatorOption) []chromedp.ExecAllocatorOption {
	if len(p.agents) == 0 {
		return opts
	}
	return append(opts, chromedp.UserAgent(p.agents[p.pick(len(p.agents))]))
}

// ProxyPool routes the session through a randomly chosen proxy. An empty
// pool leaves the session untouched.
type ProxyPool struct {
	proxies []string
	pick    func(n int) int
}

// NewProxyPool creates a pool over the given proxy addresses.
func NewProxyPool(proxies []string) *ProxyPool {
	return &ProxyPool{proxies: proxies, pick: rand.Intn}
}

func (p *ProxyPool) Apply(opts []chromedp.ExecAllocatorOption) []chromedp.ExecAllocatorOption {
	if len(p.proxies) == 0 {
		return opts
	}
	return append(opts, chromedp.ProxyServer(p.proxies[p.pick(len(p.proxies))]))
}
