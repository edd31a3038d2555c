package wallet

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

var mobileUA = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|mobile`)

// Environment describes where the wallet UI is running
type Environment struct {
	Mobile  bool
	PageURL string
}

// DetectEnvironment classifies the session from a user-agent string.
// Termux sessions count as mobile even without a user agent.
func DetectEnvironment(userAgent, pageURL string) Environment {
	mobile := mobileUA.MatchString(userAgent)
	if !mobile && os.Getenv("TERMUX_VERSION") != "" {
		mobile = true
	}
	return Environment{Mobile: mobile, PageURL: pageURL}
}

// DeepLink builds the MetaMask mobile link that opens pageURL in its browser
func DeepLink(pageURL string) string {
	target := strings.TrimSpace(pageURL)
	if u, err := url.Parse(target); err == nil && u.Host != "" {
		target = u.Host + u.EscapedPath()
		if u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
	}
	return "https://metamask.app.link/dapp/" + target
}
