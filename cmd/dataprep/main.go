// dataprep merges a phishing URL feed with a benign domain list into
// stratified train/validation CSVs for the offline fine-tuning step.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/disposable-platform/phishguard/internal/dataprep"
)

func main() {
	feedPath := flag.String("feed", "feed.txt", "phishing URL feed, one URL per line")
	benignPath := flag.String("benign", "benign.csv", "benign domain list, domain in the first column")
	trainPath := flag.String("train", "train.csv", "output training CSV")
	valPath := flag.String("val", "val.csv", "output validation CSV")
	valFraction := flag.Float64("val-fraction", 0.2, "fraction held out for validation")
	seed := flag.Int64("seed", 42, "shuffle seed")
	flag.Parse()

	feed, err := os.Open(*feedPath)
	if err != nil {
		log.Fatalf("failed to open feed: %v", err)
	}
	defer feed.Close()

	phishing, err := dataprep.ReadPhishingFeed(feed)
	if err != nil {
		log.Fatalf("failed to read feed: %v", err)
	}

	benignFile, err := os.Open(*benignPath)
	if err != nil {
		log.Fatalf("failed to open benign list: %v", err)
	}
	defer benignFile.Close()

	benign, err := dataprep.ReadBenignDomains(benignFile)
	if err != nil {
		log.Fatalf("failed to read benign list: %v", err)
	}

	examples := dataprep.Build(phishing, benign)
	train, val := dataprep.Split(examples, *valFraction, *seed)

	if err := writeCSV(*trainPath, train); err != nil {
		log.Fatalf("failed to write %s: %v", *trainPath, err)
	}
	if err := writeCSV(*valPath, val); err != nil {
		log.Fatalf("failed to write %s: %v", *valPath, err)
	}

	log.Printf("saved %s (%d) and %s (%d)", *trainPath, len(train), *valPath, len(val))
}

func writeCSV(path string, examples []dataprep.Example) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataprep.WriteCSV(f, examples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
