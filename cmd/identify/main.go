// Command identify reads lines of text and prints the predicted language
// for each, scored against a previously binarized model directory.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	heli "github.com/ZJaume/heliport"
)

func main() {
	modelDir := flag.String("m", "", "model bundle directory")
	jobs := flag.Int("j", 1, "number of scoring workers")
	ignoreConfidence := flag.Bool("c", false, "ignore confidence thresholds, always return a concrete label")
	notStrict := flag.Bool("s", false, "tolerate missing confidence thresholds instead of failing")
	flag.Parse()

	if *modelDir == "" {
		glog.Fatal("usage: identify -m <model_dir> [-j N] [-c] [-s]")
	}

	bundle, err := heli.LoadModelBundle(*modelDir, !*notStrict)
	if err != nil {
		glog.Fatal("error loading model bundle: ", err)
	}

	dispatcher := heli.NewParallelDispatcher(bundle, *jobs)

	var texts []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		texts = append(texts, sc.Text())
	}
	if err := sc.Err(); err != nil {
		glog.Fatal("error reading input: ", err)
	}

	results, err := dispatcher.Identify(texts, *ignoreConfidence)
	if err != nil {
		glog.Fatal("error scoring batch: ", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%g\n", r.Lang.Code(), r.Score)
	}
}
