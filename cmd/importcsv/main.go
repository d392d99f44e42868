package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"
	"family_expenses/internal/repository/db"
)

// One-shot import of expense history exported as semicolon-delimited CSV
// (the old phpLiteAdmin dump format). Column layout:
//
//	0: row id (ignored)  1: buyer  2: date  3: category
//	4: product  5: sum  6: note  7: whom
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("importcsv", flag.ContinueOnError)
	input := fs.String("in", "", "Path to the CSV file to import")
	dbPath := fs.String("db", "expenses.db", "Path to database file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("missing required flag: in")
	}

	f, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("open %s: %w", *input, err)
	}
	defer f.Close()

	conn, err := db.InitDB(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()

	records := repository.NewRecordRepository(conn)

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	ctx := context.Background()
	imported := 0
	for lineNo := 1; ; lineNo++ {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", lineNo, err)
		}

		rec, err := makeRecord(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := records.Insert(ctx, rec); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		imported++
	}

	fmt.Fprintf(stdout, "Imported %d records\n", imported)
	return nil
}

func makeRecord(line []string) (models.Record, error) {
	if len(line) < 8 {
		return models.Record{}, fmt.Errorf("expected 8 columns, got %d", len(line))
	}

	date, err := parseDate(line[2])
	if err != nil {
		return models.Record{}, err
	}
	sum, err := strconv.ParseFloat(line[5], 64)
	if err != nil {
		return models.Record{}, fmt.Errorf("bad sum %q: %w", line[5], err)
	}

	// Historical rows carry no separate creation time: stamp created with
	// the buy date and the buyer as creator, like the original import did.
	return models.Record{
		Buyer:    line[1],
		Category: line[3],
		BuyDate:  date,
		Product:  line[4],
		Sum:      sum,
		Whom:     line[7],
		Note:     line[6],
		Creator:  line[1],
		Created:  date,
	}, nil
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
