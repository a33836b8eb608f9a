package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/erickahmed/tyvm/vm"
)

func main() {
	trace := flag.Bool("trace", false, "log every instruction as it executes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-trace] image-file ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	console := vm.NewTermConsole()
	machine := vm.New(console)

	for _, path := range flag.Args() {
		if err := machine.LoadImageFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load image: %v\n", err)
			os.Exit(1)
		}
	}

	if *trace {
		log.SetFlags(0)
		machine.CPU.Trace = func(pc, instr uint16) {
			log.Printf("%#04x: %04x", pc, instr)
		}
	}

	if err := console.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure terminal: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- machine.Run() }()

	var err error
	interrupted := false
	select {
	case err = <-done:
	case <-ctx.Done():
		interrupted = true
	}

	// The terminal must come back buffered and echoing no matter how the
	// run ended.
	console.RestoreMode()
	console.Flush()

	switch {
	case interrupted:
		os.Exit(130)
	case err != nil:
		fmt.Fprintf(os.Stderr, "tyvm: %v\n", err)
		os.Exit(1)
	}
}
