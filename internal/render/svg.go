package render

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// WriteSVG serializes doc as an SVG document with one child element per
// shape, in order.
func WriteSVG(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	size := num(doc.CanvasSize)
	bw.WriteString(`<svg version="1.1" width="`)
	bw.WriteString(size)
	bw.WriteString(`" height="`)
	bw.WriteString(size)
	bw.WriteString(`" xmlns="http://www.w3.org/2000/svg">`)
	for _, s := range doc.Shapes {
		writeShape(bw, s)
	}
	bw.WriteString(`</svg>`)
	return bw.Flush()
}

// SVG returns the serialized document.
func (d Document) SVG() []byte {
	var buf bytes.Buffer
	_ = WriteSVG(&buf, d)
	return buf.Bytes()
}

func writeShape(w *bufio.Writer, p Primitive) {
	switch s := p.(type) {
	case Square:
		w.WriteString(`<rect x="` + num(s.X) + `" y="` + num(s.Y) +
			`" width="` + num(s.Side) + `" height="` + num(s.Side) +
			`" fill="` + s.Fill + `"></rect>`)
	case Circle:
		w.WriteString(`<circle cx="` + num(s.CX) + `" cy="` + num(s.CY) +
			`" r="` + num(s.R) + `" fill="` + s.Fill + `"></circle>`)
	case Diamond:
		w.WriteString(`<polygon points="`)
		for i, pt := range s.Points {
			if i > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(num(pt.X) + "," + num(pt.Y))
		}
		w.WriteString(`" fill="` + s.Fill + `"></polygon>`)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
