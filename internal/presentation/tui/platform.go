package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// OSOpenCmd builds the command that hands an image page to the desktop.
// Tests replace it.
var OSOpenCmd = func(pageURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", pageURL) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", pageURL) //nolint:gosec
	case "darwin":
		return exec.Command("open", pageURL) //nolint:gosec
	default:
		return nil
	}
}

// openBrowser opens a Pixabay image page. Only absolute http(s) URLs reach
// the OS opener.
func openBrowser(pageURL string) error {
	if pageURL == "" {
		return fmt.Errorf("open image page: image has no page URL")
	}
	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("open image page %q: not a web URL", pageURL)
	}
	cmd := OSOpenCmd(u.String())
	if cmd == nil {
		return fmt.Errorf("open image page on %s: unsupported platform", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open image page: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
