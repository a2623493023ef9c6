// padcfg builds and inspects 3keys-1knob keymap images: the 128-byte blob
// the firmware reads from data flash and the host simulator reads from an
// EEPROM file.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marf41/3keys-1knob/internal/buildinfo"
	"github.com/marf41/3keys-1knob/keymap"
	"github.com/marf41/3keys-1knob/mapfile"
)

var (
	inPath  string
	outPath string

	mainCmd = &cobra.Command{
		Use:   "padcfg",
		Short: "Build and inspect 3keys-1knob keymap images",
	}
	packCmd = &cobra.Command{
		Use:   "pack",
		Short: "Pack a YAML keymap definition into a keymap image",
		Run:   runPack,
	}
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the contents of a keymap image",
		Run:   runDump,
	}
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-pack the image whenever the definition changes",
		Run:   runWatch,
	}
	versionCmd = &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("padcfg", buildinfo.Short())
		},
	}
)

func pack() error {
	f, err := mapfile.Load(inPath)
	if err != nil {
		return err
	}
	if err := mapfile.Validate(f); err != nil {
		return err
	}
	blob := keymap.Encode(f.Map())
	if err := os.WriteFile(outPath, blob[:], 0o644); err != nil {
		return err
	}
	log.Infof("packed %s -> %s (%d bytes)", inPath, outPath, len(blob))
	return nil
}

func runPack(cmd *cobra.Command, args []string) {
	if err := pack(); err != nil {
		log.Fatalln("pack:", err)
	}
}

func main() {
	packCmd.Flags().StringVarP(&inPath, "in", "i", "keymap.yaml", "Keymap definition to read.")
	packCmd.Flags().StringVarP(&outPath, "out", "o", "pad.eeprom", "Image file to write.")
	watchCmd.Flags().StringVarP(&inPath, "in", "i", "keymap.yaml", "Keymap definition to watch.")
	watchCmd.Flags().StringVarP(&outPath, "out", "o", "pad.eeprom", "Image file to write.")
	dumpCmd.Flags().StringVarP(&inPath, "in", "i", "pad.eeprom", "Image file to read.")
	mainCmd.AddCommand(packCmd, dumpCmd, watchCmd, versionCmd)
	mainCmd.Execute()
}
