package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runWatch re-packs the image on every save of the definition. Watching
// the directory instead of the file survives editors that replace the
// file on save. A failed pack only warns: the next save gets another try.
func runWatch(cmd *cobra.Command, args []string) {
	if err := pack(); err != nil {
		log.Warnln("pack:", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalln("watch:", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(inPath)); err != nil {
		log.Fatalln("watch:", err)
	}
	target, err := filepath.Abs(inPath)
	if err != nil {
		log.Fatalln("watch:", err)
	}
	log.Infof("watching %s", inPath)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if p, err := filepath.Abs(ev.Name); err != nil || p != target {
				continue
			}
			if err := pack(); err != nil {
				log.Warnln("pack:", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warnln("watch:", err)
		}
	}
}
