package controller

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies lists the networks whose X-Forwarded-For and X-Real-IP
// headers are believed. An empty list trusts nobody.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts single addresses ("10.0.0.1") and networks
// ("10.0.0.0/8").
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	out := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy network %q: %w", entry, err)
			}
			out = append(out, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy address %q: %w", entry, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return out, nil
}

// Trusts reports whether ip belongs to a trusted proxy.
func (t TrustedProxies) Trusts(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range t {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}

// ClientIP returns the address of the connection peer. Forwarding headers
// are only consulted when the peer is a trusted proxy, and X-Forwarded-For
// is walked right to left so that a client cannot prepend its own entries:
// the first hop that is not a trusted proxy is the client.
func (t TrustedProxies) ClientIP(r *http.Request) string {
	peer := RemoteIP(r)
	if !t.Trusts(peer) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				// garbage from an untrusted hop, stop at the last good one
				return peer
			}
			if !t.Trusts(hop) {
				return hop
			}
			peer = hop
		}

		return peer
	}

	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		if _, err := netip.ParseAddr(xrip); err == nil {
			return xrip
		}
	}

	return peer
}

// RemoteIP returns the host part of the connection's remote address.
func RemoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
