package util

import (
	"errors"
	"os/exec"
	"runtime"
)

// browserCommands launch candidates for goos, tried in order
func browserCommands(goos, url string) [][]string {
	switch goos {
	case "windows":
		// rundll32 works on Windows 7 where "cmd /c start" is unreliable
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"google-chrome", url},
			{"firefox", url},
			{"chromium-browser", url},
			{"sensible-browser", url},
		}
	}
}

// OpenBrowser opens url with the first launcher that starts
func OpenBrowser(url string) error {
	var errs []error
	for _, argv := range browserCommands(runtime.GOOS, url) {
		err := exec.Command(argv[0], argv[1:]...).Start()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
