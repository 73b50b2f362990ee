package main

import (
	"fmt"
	"log"
	"os"

	"github.com/geoknoesis/ttlfsm/internal/ttlstore"
	"github.com/geoknoesis/ttlfsm/pkg/rdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: trigo <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  parse <file.ttl>          - Parse a Turtle file, printing each triple")
		fmt.Println("  load <file.ttl> <dbdir>   - Parse a Turtle file into a badger-backed store")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		if len(os.Args) < 3 {
			fmt.Println("Usage: trigo parse <file.ttl>")
			os.Exit(1)
		}
		runParse(os.Args[2])
	case "load":
		if len(os.Args) < 4 {
			fmt.Println("Usage: trigo load <file.ttl> <dbdir>")
			os.Exit(1)
		}
		runLoad(os.Args[2], os.Args[3])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runParse(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	emitter := rdf.NewStreamingEmitter(os.Stdout)
	ctx, err := rdf.ParseReader(f, emitter, nil)
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	if err := emitter.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "parsed with %d prefix bindings\n", len(ctx.Prefixes()))
}

func runLoad(path, dbDir string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	sink, err := ttlstore.Open(dbDir)
	if err != nil {
		log.Fatalf("open store %s: %v", dbDir, err)
	}
	defer sink.Close()

	if _, err := rdf.ParseReader(f, sink, nil); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	count, err := sink.CountSPO()
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	fmt.Printf("loaded %d triples into %s\n", count, dbDir)
}
