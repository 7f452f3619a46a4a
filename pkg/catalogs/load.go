package catalogs

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/agentstation/pokedex/pkg/errors"
)

// Format identifies the encoding of a source document.
type Format string

const (
	// FormatJSON is a JSON array of records.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of records.
	FormatYAML Format = "yaml"
)

// Compression identifies an optional compression layer around a source document.
type Compression string

const (
	// CompressionNone reads the document as-is.
	CompressionNone Compression = ""
	// CompressionGzip reads a gzip stream.
	CompressionGzip Compression = "gzip"
	// CompressionZstd reads a zstd stream.
	CompressionZstd Compression = "zstd"
)

// DetectFormat infers format and compression from a file name such as
// "pokemon.json", "pokemon.yaml.gz" or "pokemon.json.zst".
func DetectFormat(name string) (Format, Compression, error) {
	base := strings.ToLower(path.Base(filepath.ToSlash(name)))

	compression := CompressionNone
	switch ext := path.Ext(base); ext {
	case ".gz":
		compression = CompressionGzip
		base = strings.TrimSuffix(base, ext)
	case ".zst", ".zstd":
		compression = CompressionZstd
		base = strings.TrimSuffix(base, ext)
	}

	switch path.Ext(base) {
	case ".json":
		return FormatJSON, compression, nil
	case ".yaml", ".yml":
		return FormatYAML, compression, nil
	default:
		return "", compression, errors.NewLoadError(name, errors.New("unsupported source document extension"))
	}
}

// LoadFile reads and parses the source document at filename.
// A missing file, an unreadable stream or any invalid record is a LoadError.
func LoadFile(filename string) (*Catalog, error) {
	format, compression, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.NewLoadError(filename, errors.WrapIO("open", filename, err))
	}
	defer f.Close()

	return load(f, filename, format, compression)
}

// LoadFS reads and parses the named source document from fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	format, compression, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.NewLoadError(name, errors.WrapIO("open", name, err))
	}
	defer f.Close()

	return load(f, name, format, compression)
}

// Load parses an uncompressed source document from r.
// source names the document in errors.
func Load(r io.Reader, source string, format Format) (*Catalog, error) {
	return load(r, source, format, CompressionNone)
}

func load(r io.Reader, source string, format Format, compression Compression) (*Catalog, error) {
	data, err := readAll(r, source, compression)
	if err != nil {
		return nil, errors.WrapLoad(source, err)
	}

	records, err := decode(data, source, format)
	if err != nil {
		return nil, errors.WrapLoad(source, err)
	}

	return New(records, WithSource(source))
}

func readAll(r io.Reader, source string, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.WrapIO("decompress", source, err)
		}
		defer zr.Close()
		r = zr
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.WrapIO("decompress", source, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}
	return data, nil
}

func decode(data []byte, source string, format Format) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("source document is empty")
	}

	var records []Record
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.WrapParse("json", source, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, errors.WrapParse("yaml", source, err)
		}
	default:
		return nil, errors.New("unsupported format " + string(format))
	}
	return records, nil
}
