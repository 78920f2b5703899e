package app

import (
	"sync"
	"time"

	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/session"
)

// Autosaver periodically writes a backup of a modified session. Backups never
// touch the session's history or its own file.
type Autosaver struct {
	session  *session.Session
	interval time.Duration
	target   func(path string) string

	lastRevision uint64

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewAutosaver creates an Autosaver writing to target(session path).
func NewAutosaver(s *session.Session, interval time.Duration, target func(string) string) *Autosaver {
	return &Autosaver{
		session:  s,
		interval: interval,
		target:   target,
	}
}

// Start launches the saver goroutine.
func (p *Autosaver) Start() {
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.saverLoop()
	logger.InfoTagf("autosave", "Autosave: started, interval %v", p.interval)
}

// Stop signals the saver goroutine to stop and waits for it.
func (p *Autosaver) Stop() {
	if p.stopChan == nil {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	p.stopChan = nil
	logger.Debugf("Autosave: stopped")
}

func (p *Autosaver) saverLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.saveIfModified()
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified writes a backup when the canvas changed since the last one.
// It reports whether a backup was written.
func (p *Autosaver) saveIfModified() bool {
	if !p.session.IsModified() {
		return false
	}
	rev := p.session.Revision()
	if rev == p.lastRevision {
		return false
	}
	path := p.session.Path()
	if path == "" {
		logger.DebugTagf("autosave", "Autosave: session has no file, skipping")
		return false
	}
	if err := p.session.WriteBackup(p.target(path)); err != nil {
		logger.Errorf("Autosave: %v", err)
		return false
	}
	p.lastRevision = rev
	return true
}
