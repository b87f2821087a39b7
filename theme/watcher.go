package theme

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/micropad-cli/micropad/log"
	"github.com/micropad-cli/micropad/where"
)

// debounceWindow coalesces bursts of writes, such as an editor atomically
// rewriting a config file, into one re-application.
const debounceWindow = 150 * time.Millisecond

// Watcher observes every theme source path plus the dark/light appearance
// signal and re-runs the resolution pipeline when any of them changes.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	timer   *time.Timer
	done    chan struct{}
	running bool

	apply     func()
	onApplied func()
}

// NewWatcher returns a stopped watcher wired to the default pipeline.
func NewWatcher() *Watcher {
	return &Watcher{apply: ApplyBest}
}

// OnApplied registers a hook invoked after every debounced re-application.
func (w *Watcher) OnApplied(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onApplied = fn
}

// Start begins watching. Paths that do not exist right now are skipped, not
// retried. Starting a running watcher is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, path := range watchPaths() {
		if err := fsw.Add(path); err != nil {
			log.Debugf("cannot watch %s: %v", path, err)
			continue
		}
		log.Debugf("watching %s", path)
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.running = true

	Manager().Notify(w.bump)

	go w.loop(fsw, w.done)
	return nil
}

// Stop tears everything down as a unit: the appearance listener, every
// filesystem watch and any pending debounce timer. Stopping a stopped
// watcher is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	Manager().ClearNotify()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	close(w.done)
	_ = w.fsw.Close()
	w.fsw = nil
	w.running = false
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.bump()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Debugf("watch error: %v", err)
		}
	}
}

// bump arms the single debounce slot; a bump while armed restarts the
// window instead of queueing a second application.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	if w.timer != nil {
		w.timer.Reset(debounceWindow)
		return
	}
	w.timer = time.AfterFunc(debounceWindow, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	w.timer = nil
	running := w.running
	apply := w.apply
	applied := w.onApplied
	w.mu.Unlock()

	if !running {
		return
	}

	apply()
	if applied != nil {
		applied()
	}
}

// watchPaths lists every path worth monitoring that exists right now.
func watchPaths() []string {
	current := where.OmarchyCurrentTheme()

	cands := []string{
		where.OmarchyRoot(),
		where.OmarchyThemes(),
		current,
		filepath.Join(current, "alacritty.toml"),
		filepath.Join(current, "kitty.conf"),
		filepath.Join(current, "foot.ini"),
		where.HyprConfig(),
	}
	if envp := os.Getenv(where.EnvAlacrittyConfig); envp != "" {
		cands = append(cands, envp)
	}
	cands = append(cands, where.AlacrittyDir())
	cands = append(cands, where.AlacrittyCandidates()...)
	cands = append(cands, where.UserStylesheet())

	var out []string
	for _, c := range cands {
		if exists(c) {
			out = append(out, c)
		}
	}
	return out
}
