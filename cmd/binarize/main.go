// Command binarize turns a directory of per-language frequency files into
// a bundle of binary snapshots readable by the identify command.
package main

import (
	"flag"

	"github.com/golang/glog"

	heli "github.com/ZJaume/heliport"
)

func main() {
	notStrict := flag.Bool("s", false, "tolerate missing confidence thresholds instead of failing")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		glog.Fatal("usage: binarize [-s] <input_dir> <output_dir>")
	}
	inputDir, outputDir := args[0], args[1]

	builder := heli.NewModelBuilder(inputDir, !*notStrict)
	if err := builder.Build(outputDir); err != nil {
		glog.Fatal("error building bundle: ", err)
	}
}
