// Package dataprep builds the train/validation CSVs consumed by the
// offline fine-tuning step. It merges a phishing URL feed with a benign
// domain list into labeled examples and performs a stratified split.
package dataprep

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

const (
	LabelBenign   = 0
	LabelPhishing = 1
)

// Example is one labeled row of the dataset.
type Example struct {
	Text  string
	Label int
}

// ReadPhishingFeed parses a feed of phishing URLs, one per line.
// Blank lines are skipped.
func ReadPhishingFeed(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	return urls, nil
}

// ReadBenignDomains parses a headerless domain ranking CSV (domain in
// the first column) and converts each domain to a URL.
func ReadBenignDomains(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var urls []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read domain list: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		domain := strings.TrimSpace(record[0])
		if domain == "" {
			continue
		}
		urls = append(urls, "http://"+domain+"/")
	}
	return urls, nil
}

// Build labels the two URL lists and drops benign URLs that also appear
// in the phishing feed, so no text carries both labels.
func Build(phishing, benign []string) []Example {
	seen := make(map[string]struct{}, len(phishing))
	examples := make([]Example, 0, len(phishing)+len(benign))

	for _, u := range phishing {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		examples = append(examples, Example{Text: u, Label: LabelPhishing})
	}
	for _, u := range benign {
		if _, overlap := seen[u]; overlap {
			continue
		}
		seen[u] = struct{}{}
		examples = append(examples, Example{Text: u, Label: LabelBenign})
	}
	return examples
}

// Split shuffles deterministically and splits into train/validation
// sets, stratified so each side keeps the overall class balance.
func Split(examples []Example, valFraction float64, seed int64) (train, val []Example) {
	rng := rand.New(rand.NewSource(seed))

	byLabel := map[int][]Example{}
	for _, ex := range examples {
		byLabel[ex.Label] = append(byLabel[ex.Label], ex)
	}

	for _, label := range []int{LabelBenign, LabelPhishing} {
		class := byLabel[label]
		rng.Shuffle(len(class), func(i, j int) {
			class[i], class[j] = class[j], class[i]
		})
		cut := len(class) - int(float64(len(class))*valFraction)
		train = append(train, class[:cut]...)
		val = append(val, class[cut:]...)
	}

	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(val), func(i, j int) { val[i], val[j] = val[j], val[i] })
	return train, val
}

// WriteCSV emits examples with the text,label header the fine-tuning
// step expects.
func WriteCSV(w io.Writer, examples []Example) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"text", "label"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, ex := range examples {
		if err := cw.Write([]string{ex.Text, strconv.Itoa(ex.Label)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
