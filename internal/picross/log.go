package picross

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "picross",
})

// SetLogger replaces the logger used for soft-fail diagnostics.
// Passing nil is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
