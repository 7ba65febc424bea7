package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the persistent status line and short-lived messages
// that replace it for a while.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label

	mu         sync.Mutex
	status     string
	flashGen   int
	flashTimer *time.Timer
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{status: "Ready"}
	sb.statusLabel = widget.NewLabel(sb.status)
	sb.container = container.NewHBox(sb.statusLabel)
	return sb
}

// SetStatus updates the persistent status and ends any flash in progress.
func (sb *StatusBar) SetStatus(status string) {
	sb.mu.Lock()
	sb.status = status
	if sb.flashTimer != nil {
		sb.flashTimer.Stop()
		sb.flashTimer = nil
		sb.flashGen++
	}
	sb.mu.Unlock()

	sb.statusLabel.SetText(status)
}

// Flash shows message for d, then restores the persistent status.
func (sb *StatusBar) Flash(message string, d time.Duration) {
	sb.mu.Lock()
	if sb.flashTimer != nil {
		sb.flashTimer.Stop()
	}
	sb.flashGen++
	gen := sb.flashGen
	sb.flashTimer = time.AfterFunc(d, func() {
		fyne.Do(func() { sb.expire(gen) })
	})
	sb.mu.Unlock()

	sb.statusLabel.SetText(message)
}

func (sb *StatusBar) expire(gen int) {
	sb.mu.Lock()
	if gen != sb.flashGen {
		sb.mu.Unlock()
		return
	}
	sb.flashTimer = nil
	status := sb.status
	sb.mu.Unlock()

	sb.statusLabel.SetText(status)
}

// GetStatus returns the text currently shown.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
