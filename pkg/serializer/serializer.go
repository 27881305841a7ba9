package serializer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/profilemanager/pkg/logger"
	"github.com/redhat-data-and-ai/profilemanager/pkg/profile"
	"github.com/redhat-data-and-ai/profilemanager/pkg/store"
)

// FormatHeader is the first line of every profile file
// One profile per line follows:
// <id>\t<age>\t<name>\t<city>\t<country>\t<hobby1|hobby2|...>
const FormatHeader = "PMCLI1"

const (
	minFields    = 5
	hobbiesField = 5
)

var (
	// ErrInvalidHeader is returned when a file is empty or does not start with FormatHeader
	ErrInvalidHeader = errors.New("invalid profile file header")

	errMalformedRecord = errors.New("malformed profile record")
)

// LoadSummary reports what happened to each record line during a load
type LoadSummary struct {
	Loaded     int
	Malformed  int
	Duplicates int
	Blank      int
}

// Skipped returns the number of non-blank lines that did not produce a profile
func (s LoadSummary) Skipped() int {
	return s.Malformed + s.Duplicates
}

// Save writes every profile in s to path, replacing any existing content
// The file is only truncated once it has been opened successfully.
func Save(ctx context.Context, s store.ProfileStoreInterface, path string) error {
	log := logger.Logger(ctx).WithField("path", path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		log.WithError(err).Error("failed to open profile file for writing")
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer f.Close()

	if err := Write(ctx, f, s); err != nil {
		log.WithError(err).Error("failed to write profile file")
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		log.WithError(err).Error("failed to close profile file")
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.WithField("profiles", s.Size()).Info("saved profiles")
	return nil
}

// Write encodes the header and every profile in ListIDs order to w
func Write(ctx context.Context, w io.Writer, s store.ProfileStoreInterface) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(FormatHeader + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, id := range s.ListIDs() {
		p, ok := s.Find(id)
		if !ok {
			continue
		}
		if _, err := bw.WriteString(EncodeRecord(p)); err != nil {
			return fmt.Errorf("failed to write profile %d: %w", id, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush profiles: %w", err)
	}

	logger.Logger(ctx).WithField("profiles", s.Size()).Debug("encoded profiles")
	return nil
}

// EncodeRecord renders one profile as a newline-terminated record line
func EncodeRecord(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.ID()))
	b.WriteByte(fieldSep)
	b.WriteString(strconv.Itoa(p.Age()))
	b.WriteByte(fieldSep)
	b.WriteString(EscapeField(p.Name()))
	b.WriteByte(fieldSep)
	b.WriteString(EscapeField(p.City()))
	b.WriteByte(fieldSep)
	b.WriteString(EscapeField(p.Country()))
	b.WriteByte(fieldSep)
	b.WriteString(joinHobbies(p.Hobbies()))
	b.WriteByte('\n')
	return b.String()
}

// Load replaces the contents of s with the profiles stored at path
// s is left untouched when the file cannot be opened or has the wrong header.
func Load(ctx context.Context, s store.ProfileStoreInterface, path string) (*LoadSummary, error) {
	log := logger.Logger(ctx).WithField("path", path)

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("failed to open profile file for reading")
		return nil, fmt.Errorf("failed to open %s for reading: %w", path, err)
	}
	defer f.Close()

	summary, err := Read(ctx, f, s)
	if err != nil {
		log.WithError(err).Error("failed to load profile file")
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"loaded":     summary.Loaded,
		"malformed":  summary.Malformed,
		"duplicates": summary.Duplicates,
	}).Info("loaded profiles")
	return summary, nil
}

// Read validates the header from r, clears s and inserts every decodable record
// Malformed lines and duplicate ids are skipped and counted; reading continues.
func Read(ctx context.Context, r io.Reader, s store.ProfileStoreInterface) (*LoadSummary, error) {
	log := logger.Logger(ctx)
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if trimLine(header) != FormatHeader {
		return nil, ErrInvalidHeader
	}

	s.Clear()
	summary := &LoadSummary{}
	lineNo := 1

	for eof := errors.Is(err, io.EOF); !eof; {
		var raw string
		raw, err = br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return summary, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
			}
			eof = true
			if raw == "" {
				break
			}
		}
		lineNo++

		line := trimLine(raw)
		if line == "" {
			summary.Blank++
			continue
		}

		p, decodeErr := DecodeRecord(line)
		if decodeErr != nil {
			summary.Malformed++
			log.WithField("line", lineNo).WithError(decodeErr).Debug("skipping malformed profile record")
			continue
		}

		if !s.Insert(p) {
			summary.Duplicates++
			log.WithField("line", lineNo).WithField("id", p.ID()).Debug("skipping duplicate profile id")
			continue
		}
		summary.Loaded++
	}

	return summary, nil
}

// DecodeRecord parses one record line without its line terminator
func DecodeRecord(line string) (*profile.Profile, error) {
	fields := strings.Split(line, fieldSepStr)
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", errMalformedRecord, minFields, len(fields))
	}

	id, err := parseLeadingInt(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", errMalformedRecord, fields[0])
	}
	age, err := parseLeadingInt(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid age %q", errMalformedRecord, fields[1])
	}

	p := profile.New(id, UnescapeField(fields[2]), age, UnescapeField(fields[3]), UnescapeField(fields[4]))

	if len(fields) > hobbiesField && fields[hobbiesField] != "" {
		for _, token := range SplitUnescapedPipes(fields[hobbiesField]) {
			p.AddHobby(UnescapeField(token))
		}
	}
	return p, nil
}

// parseLeadingInt reads a 32-bit decimal number at the start of s
// Leading whitespace and a sign are accepted and anything after the digits is ignored,
// so " 5", "5 " and "5abc" all read as 5. Values outside int32 are rejected.
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// trimLine drops the line terminator, including a Windows carriage return
func trimLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
