// This defines a basic executable that reads a maze image and prints the graph
// of decision points found in it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yalue/dfsmaze/config"
	"github.com/yalue/dfsmaze/network"
)

// notify is used to write status messages to the user.
var notify = log.New(os.Stderr, "", 0)

func run() int {
	defaults, e := config.Load()
	if e != nil {
		notify.Printf("Error loading configuration: %s\n", e)
		return 1
	}
	var inFilename string
	var quiet bool
	flag.StringVar(&inFilename, "input_file", defaults.InputFile,
		"The .bmp or .png maze image to parse. Open pixels must be pure "+
			"white.")
	flag.BoolVar(&quiet, "quiet", false,
		"If set, only prints a summary instead of every node.")
	flag.Parse()
	if inFilename == "" {
		notify.Println("Invalid or missing argument.")
		notify.Println("Run with -help for more information.")
		return 1
	}
	g, e := network.Parse(inFilename)
	if e != nil {
		notify.Printf("Failed parsing maze image: %s\n", e)
		return 1
	}
	if !quiet {
		fmt.Print(g)
	}
	notify.Printf("Parsed %s OK.\n", g.GetInfo())
	return 0
}

func main() {
	os.Exit(run())
}
