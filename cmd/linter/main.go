// Command linter reports process-terminating calls outside func main.
package main

import (
	"github.com/MikhailRaia/cat-viewer/cmd/linter/analyzer"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
