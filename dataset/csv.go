package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the charset assumed for files that are not valid UTF-8.
// Romanian registry exports are usually windows-1250.
const DefaultEncoding = "windows-1250"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadOptions controls how CSV input is decoded.
type ReadOptions struct {
	// Encoding names the fallback charset (IANA name) used when the input is
	// not valid UTF-8. Empty means DefaultEncoding.
	Encoding string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// ReadFile reads a CSV file into a dataset.
func ReadFile(path string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV from r. The first row is the header. A leading UTF-8 BOM is
// dropped and input that is not valid UTF-8 is decoded with opts.Encoding.
func Read(r io.Reader, opts ReadOptions) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	src, err := decode(raw, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bufio.NewReaderSize(src, 256*1024))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	ds := New(header...)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(ds.Records)+1, err)
		}
		// short rows read as empty cells, extra cells would be lost
		if len(rec) > len(ds.Columns) {
			return nil, &ExtraFieldsError{Row: len(ds.Records) + 1, Expected: len(ds.Columns), Got: len(rec)}
		}
		ds.Records = append(ds.Records, Record(rec))
	}

	return ds, nil
}

// Write writes the header and every record as CSV.
func (ds *Dataset) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range ds.Records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the dataset to path through a temporary file in the same
// directory, so readers never see a partially written file.
func (ds *Dataset) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := ds.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

func decode(raw []byte, name string) (io.Reader, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return bytes.NewReader(raw), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown input encoding %q: %w", name, err)
	}
	if enc == nil {
		// registered but unsupported by x/text; latin-1 never fails to decode
		return charmap.ISO8859_1, nil
	}
	return enc, nil
}

// ValidEncoding reports whether name is a charset Read can decode.
func ValidEncoding(name string) bool {
	_, err := lookupEncoding(name)
	return err == nil
}
