package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

var spinnerSpeed = 300 * time.Millisecond
var spinnerInstance = spinner.New(spinner.CharSets[14], spinnerSpeed)

// Enabled reports whether progress output makes sense, i.e. whether stdout
// is a terminal.
func Enabled() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Show starts showing a progress spinner.
func Show(text string, args ...interface{}) *spinner.Spinner {
	message := " " + fmt.Sprintf(text, args...)
	spinnerInstance.Suffix = message
	spinnerInstance.Stop()
	spinnerInstance.Start()
	return spinnerInstance
}

// Stop stops the progress spinner.
func Stop() {
	spinnerInstance.Stop()
}

// NewBytesBar returns a progress bar counting bytes. A size of -1 renders a
// spinner-style bar for bodies of unknown length. When visible is false the
// bar tracks progress without printing anything.
func NewBytesBar(size int64, description string, visible bool) *progressbar.ProgressBar {
	if !visible {
		return progressbar.DefaultBytesSilent(size, description)
	}
	return progressbar.DefaultBytes(size, description)
}
