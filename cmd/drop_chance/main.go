package main

import (
	"flag"
	"os"

	"github.com/gachatools/dropchance/internal/app"
)

func main() {
	useExamples := flag.Bool("useExamples", false, "use example tables from input/drop_chance/examples instead of the repo tables")
	flag.Parse()
	os.Exit(app.RunWithOptions(app.Options{UseExamples: *useExamples}))
}
