package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mini-orders/internal/seed"

	"github.com/shopspring/decimal"
)

// seedgen writes a sample gzipped JSON-lines catalog that the API server can
// load on first start with SEED_ENABLED=true.
func main() {
	out := flag.String("out", "data/catalog/items.jsonl.gz", "output file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	records := sampleRecords()
	if err := writeCatalog(*out, records); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d items\n", *out, len(records))
}

func sampleRecords() []seed.Record {
	item := func(name, description, price string) seed.Record {
		p := decimal.RequireFromString(price)
		r := seed.Record{Name: name, Price: &p}
		if description != "" {
			r.Description = &description
		}
		return r
	}

	return []seed.Record{
		item("Espresso Beans 1kg", "Dark roast, whole bean", "24.90"),
		item("Filter Papers", "Pack of 100", "4.50"),
		item("Ceramic Mug", "350ml, dishwasher safe", "12.00"),
		item("Pour Over Kettle", "Gooseneck, 1L", "39.99"),
		item("Hand Grinder", "", "55.00"),
		item("Oat Milk 1L", "Barista edition", "2.75"),
		item("Loose Leaf Green Tea", "100g tin", "9.80"),
		item("Gift Card", "Redeemable in store", "25"),
	}
}

func writeCatalog(path string, records []seed.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	enc := json.NewEncoder(gzipWriter)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write record %q: %w", r.Name, err)
		}
	}

	return gzipWriter.Close()
}
