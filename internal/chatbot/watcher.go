package chatbot

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the script whenever the file changes, so replies can be
// edited without restarting the server. Events are debounced because editors
// emit several writes per save.
func (r *Responder) Watch(ctx context.Context, path string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// watch the directory; editors replace files on save
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return err
	}

	go func() {
		defer fsw.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				pending = time.After(200 * time.Millisecond)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Printf("chatbot script watch error: %v\n", err)
			case <-pending:
				pending = nil
				if err := r.LoadFile(path); err != nil {
					log.Printf("chatbot script reload failed: %v\n", err)
					continue
				}
				log.Printf("chatbot script reloaded from %s\n", path)
			}
		}
	}()

	return nil
}
