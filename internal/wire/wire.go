// Package wire defines the structs exchanged between client and
// server, grounded on include/message.h's Status/message/PrintPayload.
// The command parser and the socket read/write loop that actually move
// these structs across a connection are out of spec scope (spec.md
// ง5.1/5.4 name the parser/socket layer as a non-goal); this package
// only defines the wire-visible shapes and a Codec interface that
// cmd/dbserver programs against.
package wire

import (
	"encoding/binary"
	"io"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

// Message is one frame sent from server to client: a status, a
// human-readable payload string, and whether PrintPayload/column data
// follows it.
type Message struct {
	Status       dberrors.Status
	Payload      string
	HasPrint     bool
	PrintPayload PrintPayload
}

// PrintPayload precedes the per-column/per-result print data of a
// PRINT query's response, matching message.h's PrintPayload.
type PrintPayload struct {
	NumResults int32
	NumCols    int32
}

// ColumnTag is the data-type tag execute_print_operator sends ahead of
// each column/result's raw payload bytes.
type ColumnTag int32

const (
	TagInt ColumnTag = iota
	TagLong
	TagFloat
)

// Codec reads and writes Messages over a connection. The server's
// accept loop (cmd/dbserver) is the only expected implementer outside
// tests; BinaryCodec works over any io.Reader/io.Writer, so it can be
// tested over an in-memory buffer without a live socket.
type Codec interface {
	ReadMessage() (Message, error)
	WriteMessage(Message) error
}

// BinaryCodec is a straightforward length-prefixed implementation of
// Codec suitable for a UNIX domain socket connection.
type BinaryCodec struct {
	R io.Reader
	W io.Writer
}

func (c *BinaryCodec) WriteMessage(m Message) error {
	if err := binary.Write(c.W, binary.LittleEndian, int32(m.Status.Code)); err != nil {
		return err
	}
	if err := writeString(c.W, m.Status.Message); err != nil {
		return err
	}
	if err := writeString(c.W, m.Payload); err != nil {
		return err
	}
	hasPrint := int32(0)
	if m.HasPrint {
		hasPrint = 1
	}
	if err := binary.Write(c.W, binary.LittleEndian, hasPrint); err != nil {
		return err
	}
	if !m.HasPrint {
		return nil
	}
	if err := binary.Write(c.W, binary.LittleEndian, m.PrintPayload.NumResults); err != nil {
		return err
	}
	return binary.Write(c.W, binary.LittleEndian, m.PrintPayload.NumCols)
}

func (c *BinaryCodec) ReadMessage() (Message, error) {
	var m Message
	var code int32
	if err := binary.Read(c.R, binary.LittleEndian, &code); err != nil {
		return m, err
	}
	m.Status.Code = dberrors.StatusCode(code)

	msg, err := readString(c.R)
	if err != nil {
		return m, err
	}
	m.Status.Message = msg

	payload, err := readString(c.R)
	if err != nil {
		return m, err
	}
	m.Payload = payload

	var hasPrint int32
	if err := binary.Read(c.R, binary.LittleEndian, &hasPrint); err != nil {
		return m, err
	}
	m.HasPrint = hasPrint != 0
	if !m.HasPrint {
		return m, nil
	}
	if err := binary.Read(c.R, binary.LittleEndian, &m.PrintPayload.NumResults); err != nil {
		return m, err
	}
	if err := binary.Read(c.R, binary.LittleEndian, &m.PrintPayload.NumCols); err != nil {
		return m, err
	}
	return m, nil
}

// WritePrintResults sends each result's ColumnTag followed by its raw
// payload values, matching
// execute_print_operator's per-column data-type tag + raw payload
// wire format. Callers send the preceding Message (with HasPrint set
// and PrintPayload populated) via WriteMessage first.
func (c *BinaryCodec) WritePrintResults(results []*catalog.Result) error {
	for _, r := range results {
		if err := binary.Write(c.W, binary.LittleEndian, int32(tagFor(r.DataType))); err != nil {
			return err
		}
		if err := writeValues(c.W, r); err != nil {
			return err
		}
	}
	return nil
}

// ReadPrintResults reads numResults tagged Results, as written by
// WritePrintResults, each holding numTuples values (one column's worth
// of tuples).
func (c *BinaryCodec) ReadPrintResults(numResults int32, numTuples int32) ([]*catalog.Result, error) {
	results := make([]*catalog.Result, 0, numResults)
	for i := int32(0); i < numResults; i++ {
		var tag int32
		if err := binary.Read(c.R, binary.LittleEndian, &tag); err != nil {
			return nil, err
		}
		r, err := readValues(c.R, ColumnTag(tag), numTuples)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func tagFor(dt catalog.DataType) ColumnTag {
	switch dt {
	case catalog.Long:
		return TagLong
	case catalog.Float:
		return TagFloat
	default:
		return TagInt
	}
}

func writeValues(w io.Writer, r *catalog.Result) error {
	switch r.DataType {
	case catalog.Long:
		return binary.Write(w, binary.LittleEndian, r.Longs)
	case catalog.Float:
		return binary.Write(w, binary.LittleEndian, r.Floats)
	default:
		vals := r.Ints
		if vals == nil {
			vals = r.Positions
		}
		return binary.Write(w, binary.LittleEndian, vals)
	}
}

func readValues(r io.Reader, tag ColumnTag, n int32) (*catalog.Result, error) {
	switch tag {
	case TagLong:
		vals := make([]int64, n)
		if err := binary.Read(r, binary.LittleEndian, &vals); err != nil {
			return nil, err
		}
		return catalog.LongResult(vals), nil
	case TagFloat:
		vals := make([]float64, n)
		if err := binary.Read(r, binary.LittleEndian, &vals); err != nil {
			return nil, err
		}
		return catalog.FloatResult(vals), nil
	default:
		vals := make([]int32, n)
		if err := binary.Read(r, binary.LittleEndian, &vals); err != nil {
			return nil, err
		}
		return catalog.IntResult(vals), nil
	}
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}
