package ui

import (
	"fmt"
	"io"

	"github.com/noborus/ov/oviewer"
)

// RunPager shows the content of r in ov and blocks until the user quits.
// The caller must own the terminal.
func RunPager(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
