package kana

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nilavan/kanadeck/pkg/errors"
)

// Readings files are CSV with one record per character:
//
//	hiragana,katakana,tamil,romaji
//	あ,ア,அ,A
//
// Both script forms of a record map to the same reading. Either form may be
// blank when a character exists in only one script. Lines starting with '#'
// are comments.

// recordFields is the expected number of CSV fields per record.
const recordFields = 4

// ReadCSV decodes a readings table from r. Kana keys are NFC-normalized so
// decomposed input (e.g. か + combining dakuten) matches the precomposed
// characters in the deck tables.
func ReadCSV(r io.Reader) (Readings, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = recordFields
	cr.TrimLeadingSpace = true

	readings := Readings{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "malformed readings record")
		}

		hira := norm.NFC.String(strings.TrimSpace(record[0]))
		kata := norm.NFC.String(strings.TrimSpace(record[1]))
		reading := Reading{
			Romaji: strings.TrimSpace(record[3]),
			Tamil:  strings.TrimSpace(record[2]),
		}

		if hira == "" && kata == "" {
			line, _ := cr.FieldPos(0)
			return nil, errors.New(errors.ErrCodeInvalidData, "record at line %d has no character in either script", line)
		}
		if hira != "" {
			readings[hira] = reading
		}
		if kata != "" {
			readings[kata] = reading
		}
	}

	if len(readings) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "readings file contains no records")
	}
	return readings, nil
}

// LoadCSV reads a readings table from the file at path.
func LoadCSV(path string) (Readings, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "readings file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "open readings file %s", path)
	}
	defer f.Close()

	readings, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "readings file %s", path)
	}
	return readings, nil
}
