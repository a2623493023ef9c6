package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marf41/3keys-1knob/keymap"
)

func runDump(cmd *cobra.Command, args []string) {
	b, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalln("dump:", err)
	}
	if len(b) != keymap.BlobBytes {
		log.Warnf("%s holds %d bytes, the device reads %d", inPath, len(b), keymap.BlobBytes)
	}

	// Show the effective values the firmware will run with, annotating
	// where decode-time defaulting changed what is stored.
	stored := keymap.DecodeStored(b)
	effective := keymap.Decode(b)

	fmt.Printf("max layers: %d", effective.MaxLayers)
	if stored.MaxLayers != effective.MaxLayers {
		fmt.Printf(" (stored %d, clamped)", stored.MaxLayers)
	}
	fmt.Println()

	for i := range effective.Layers {
		fmt.Printf("layer %d\n", i)
		printColor("foreground", stored.Layers[i].Foreground, effective.Layers[i].Foreground)
		printColor("background", stored.Layers[i].Background, effective.Layers[i].Background)
		printColor("fade", stored.Layers[i].Fade, effective.Layers[i].Fade)
		for ev := keymap.Event(0); ev < keymap.NumEvents; ev++ {
			s := effective.Layers[i].Slots[ev]
			if !s.Bound() {
				continue
			}
			fmt.Printf("  %-10s %s\n", ev, slotText(s))
		}
	}
}

func printColor(name string, stored, effective keymap.RGB) {
	suffix := ""
	if stored != effective {
		suffix = " (default)"
	}
	fmt.Printf("  %-10s %02X%02X%02X%s\n", name, effective.R, effective.G, effective.B, suffix)
}

var modNames = [8]string{"ctrl", "shift", "alt", "gui", "rctrl", "rshift", "ralt", "rgui"}

func slotText(s keymap.Slot) string {
	if s.IsConsumer() {
		return fmt.Sprintf("consumer 0x%02X", s.Key)
	}
	var parts []string
	for bit := 0; bit < 8; bit++ {
		if s.Mod&(1<<bit) != 0 {
			parts = append(parts, modNames[bit])
		}
	}
	if s.Key >= 0x20 && s.Key < 0x7F {
		parts = append(parts, fmt.Sprintf("%q", s.Key))
	} else {
		parts = append(parts, fmt.Sprintf("0x%02X", s.Key))
	}
	return strings.Join(parts, "+")
}
