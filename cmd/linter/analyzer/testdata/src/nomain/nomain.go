package nomain

import (
	"log"
	"os"
)

func main() {
	log.Fatal("not the program entry point") // want "log.Fatal is forbidden outside main function"
	os.Exit(1)                               // want "os.Exit is forbidden outside main function"
}

func shadowed() {
	panic := func(string) {}
	panic("local function, not the builtin")
}
