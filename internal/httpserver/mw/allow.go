package mw

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/writewell/writewell/internal/logger"
)

// AllowOnlyCIDRS allows only specific IPs/CIDRs, matched against the
// connection's remote address. With an empty list it does not filter.
// Useful when the daemon is reachable beyond localhost.
func AllowOnlyCIDRS(allowed []string, log logger.Logger) func(http.Handler) http.Handler {
	prefixes := parsePrefixes(allowed, log)
	if len(prefixes) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			addr, err := netip.ParseAddr(host)
			if err != nil || !contains(prefixes, addr) {
				log.Debug("request rejected by IP filter",
					logger.String("remote_addr", r.RemoteAddr))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parsePrefixes accepts both CIDRs and bare IPs (treated as /32 or /128).
func parsePrefixes(list []string, log logger.Logger) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(list))
	for _, raw := range list {
		if p, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, p)
			continue
		}
		if a, err := netip.ParseAddr(raw); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		log.Warnf("ignoring invalid CIDR/IP in allow list: %q", raw)
	}
	return prefixes
}

func contains(prefixes []netip.Prefix, addr netip.Addr) bool {
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
