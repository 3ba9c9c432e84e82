package store

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/rs/zerolog/log"
)

// Record is one line of a JSONL profile file. The birth date is either the
// free-form Birth string or the Year/Month/Day/Hour fields.
type Record struct {
	Name  string `json:"name"`
	Birth string `json:"birth,omitempty"`
	Year  int    `json:"year,omitempty"`
	Month int    `json:"month,omitempty"`
	Day   int    `json:"day,omitempty"`
	Hour  *int   `json:"hour,omitempty"`
	Note  string `json:"note,omitempty"`
}

// BirthData resolves the record's birth date.
func (r Record) BirthData() (bazi.BirthData, error) {
	if r.Birth != "" {
		return bazi.ParseBirth(r.Birth)
	}
	b := bazi.BirthData{Year: r.Year, Month: r.Month, Day: r.Day, Hour: bazi.DefaultHour}
	if r.Hour != nil {
		b.Hour = *r.Hour
	}
	return b, b.Validate()
}

// ImportResult summarizes an import.
type ImportResult struct {
	Added   int
	Skipped []string // "line N: reason"
}

// Import adds one profile per JSONL line. Blank lines are ignored; lines
// that fail to parse, carry an invalid birth date or reuse a name are
// skipped and reported.
func (db *DB) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var res ImportResult
	skip := func(line int, reason error) {
		res.Skipped = append(res.Skipped, fmt.Sprintf("line %d: %v", line, reason))
		log.Debug().Int("line", line).Err(reason).Msg("skipped profile")
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			skip(lineNum, err)
			continue
		}
		birth, err := rec.BirthData()
		if err != nil {
			skip(lineNum, err)
			continue
		}

		_, err = db.Add(ctx, rec.Name, birth, rec.Note)
		if errors.Is(err, ErrDuplicateProfile) {
			skip(lineNum, err)
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			skip(lineNum, err)
			continue
		}
		res.Added++
	}

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading profiles: %w", err)
	}

	return res, nil
}
