package utils

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

func ImportCsv[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ImportCsv: failed to open %s: %w", path, err)
	}

	defer file.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("ImportCsv: failed to parse %s: %w", path, err)
	}

	return rows, nil
}

func ExportCsv[T any](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ExportCsv: failed to create %s: %w", path, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportCsv: failed to write %s: %w", path, err)
	}

	log.Infof("Exported %d rows to %s", len(rows), path)

	return nil
}
