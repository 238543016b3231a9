//Package archive writes solved reports to compressed, append-style archive
//files and reads them back. One JSON record per report, one line per
//record. The compressor is picked from the file extension: .zst for
//z-standard, .gz for gzip, .lz for LZW and .raw for raw deflate; anything
//else gets z-standard, which offers the best tradeoff for these files.
package archive

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	lewis "github.com/solvate/golewis"
)

const (
	lzwLitwidth int = 8
	flateLevel  int = 6
)

//Record is the serialized form of one solved report. Structures are stored
//in label form (bond records plus lone pair and charge maps), matching the
//convention of the text reports.
type Record struct {
	Formula   string             `json:"formula"`
	Bonds     []lewis.BondRecord `json:"bonds"`
	LonePairs map[string]int     `json:"lone_pairs"`
	Charges   map[string]int     `json:"charges"`
	Resonance int                `json:"resonance"` //number of resonance forms beyond the optimal one
	Geometry  *lewis.VSEPR       `json:"vsepr"`
}

//NewRecord builds the archive record for a report. Only the most optimal
//structure is stored; the resonance count keeps track of the rest.
func NewRecord(r *lewis.Report) *Record {
	return &Record{
		Formula:   r.Formula,
		Bonds:     r.MostOptimal.Structure.BondRecords(),
		LonePairs: r.MostOptimal.Structure.LonePairs,
		Charges:   r.MostOptimal.Charges,
		Resonance: len(r.ResonanceForms),
		Geometry:  r.Geometry,
	}
}

//Write!

type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	nwritten  int
}

//NewWriter creates an archive at name, choosing the compressor from the
//extension.
func NewWriter(name string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flateLevel) }
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil }
	lzwwriter := func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}

	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		AnyNewWriter = gzipwriter
	case ".lz":
		AnyNewWriter = lzwwriter
	case ".raw":
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = zstdwriter
	}
	W.h, err = AnyNewWriter(W.f)
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't set up compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.filename = name
	W.writeable = true
	return W, nil
}

//WNext appends one report to the archive.
func (W *Writer) WNext(r *lewis.Report) error {
	if !W.writeable {
		return Error{ArchiveUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if r == nil {
		return Error{NilReport, W.filename, []string{"WNext"}, true}
	}
	buf, err := json.Marshal(NewRecord(r))
	if err != nil {
		return Error{"Can't serialize report: " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	buf = append(buf, '\n')
	if _, err := W.h.Write(buf); err != nil {
		return Error{WriteError + ": " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.nwritten++
	return nil
}

//Len returns the number of reports written so far.
func (W *Writer) Len() int {
	return W.nwritten
}

//Close flushes and closes the archive. The writer cannot be used after
//this call.
func (W *Writer) Close() {
	if W == nil {
		return
	}
	if W.writeable {
		W.h.Close()
		W.f.Close()
	}
	W.writeable = false
}

//Read!

type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
}

//zstd.Decoder does not implement io.ReadCloser (its Close returns
//nothing), so it gets wrapped.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

//NewReader opens an archive written by NewWriter. The compressor is picked
//from the extension, as when writing.
func NewReader(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		R.z, err = gzip.NewReader(R.f)
	case ".lz":
		R.z = lzw.NewReader(R.f, lzw.MSB, lzwLitwidth)
	case ".raw":
		R.z = flate.NewReader(R.f)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(R.f)
		if err == nil {
			R.z = stdql{closeql: d.Close, Decoder: d}
		}
	}
	if err != nil {
		R.f.Close()
		return nil, Error{"Can't set up decompressor: " + err.Error(), name, []string{"NewReader"}, true}
	}
	R.h = bufio.NewReader(R.z)
	R.filename = name
	R.readable = true
	return R, nil
}

//Next returns the next record in the archive, or io.EOF after the last
//one.
func (R *Reader) Next() (*Record, error) {
	if !R.readable {
		return nil, Error{ArchiveUnIniRead, R.filename, []string{"Next"}, true}
	}
	line, err := R.h.ReadBytes('\n')
	if err == io.EOF && len(line) == 0 {
		return nil, io.EOF
	}
	if err != nil && err != io.EOF {
		return nil, Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	rec := new(Record)
	if err := json.Unmarshal(line, rec); err != nil {
		return nil, Error{WrongFormat + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	return rec, nil
}

//Close closes the archive. The reader cannot be used after this call.
func (R *Reader) Close() {
	if R == nil {
		return
	}
	if R.readable {
		R.z.Close()
		R.f.Close()
	}
	R.readable = false
}

//Errors

//Error is the general structure for archive errors. It fulfills
//lewis-style decoration so callers can trace it up the stack.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("archive file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the archive associated to the error.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ArchiveUnIniRead  = "Archive object uninitialized to read"
	ArchiveUnIniWrite = "Archive object uninitialized to write"
	UnableToOpen      = "Unable to open file"
	ReadError         = "Error reading record"
	WriteError        = "Error writing record"
	WrongFormat       = "Wrong format in archive record"
	NilReport         = "Given nil report"
)
