package main

import (
	"log"
	"os"
)

func main() {
	log.Fatal("allowed in main")        // No want
	log.Fatalf("allowed in %s", "main") // No want
	os.Exit(0)                          // No want
	panic("still forbidden")            // want "panic is forbidden"
}

func init() {
	log.Fatal("forbidden in init") // want "log.Fatal is forbidden outside main function"
	os.Exit(1)                     // want "os.Exit is forbidden outside main function"
}

func run() {
	log.Fatalln("fatal") // want "log.Fatalln is forbidden outside main function"
	log.Panicf("%d", 1)  // want "log.Panicf is forbidden outside main function"
	log.Println("fine")
	go func() {
		os.Exit(2) // want "os.Exit is forbidden outside main function"
	}()
}
