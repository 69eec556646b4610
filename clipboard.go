package main

import (
	"log"

	"golang.design/x/clipboard"
)

// Clipboard writes text to the system clipboard. Copying is a no-op when the
// platform clipboard could not be initialized.
type Clipboard struct {
	ready bool
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: init failed, copy disabled: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{ready: true}
}

func (c *Clipboard) Ready() bool {
	return c != nil && c.ready
}

func (c *Clipboard) Copy(data []byte) bool {
	if !c.Ready() {
		return false
	}
	clipboard.Write(clipboard.FmtText, data)
	return true
}
