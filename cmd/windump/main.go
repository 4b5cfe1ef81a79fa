// Package main is a diagnostic tool that dumps decoded console input records
// to stdout. Run it in a Windows console, press keys and move the mouse, and
// stop it with Ctrl+C.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dshills/wincon/console"
	"github.com/dshills/wincon/record"
)

func main() {
	con, err := console.Current()
	if err != nil {
		log.Fatalf("open console: %v", err)
	}
	defer con.Close()

	prev, err := con.EnableInputEvents()
	if err != nil {
		log.Fatalf("enable input events: %v", err)
	}
	defer con.SetInputMode(prev)

	size, err := con.TerminalSize()
	if err != nil {
		log.Fatalf("query terminal size: %v", err)
	}
	fmt.Printf("windump: terminal %s, press Ctrl+C to exit\n", size)

	buf := make([]record.Raw, 32)
	for {
		n, err := con.ReadInput(buf)
		if err != nil {
			log.Fatalf("read console input: %v", err)
		}
		for _, raw := range buf[:n] {
			rec, err := record.Decode(raw, con)
			if err != nil {
				// A malformed record is skippable here; corrupt
				// output is not worth dying over in a dump tool.
				fmt.Fprintf(os.Stderr, "windump: %v\n", err)
				continue
			}
			fmt.Println(rec)
		}
	}
}
