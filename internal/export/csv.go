package export

import (
	"bufio"
	"io"
	"strings"
)

const utf8BOM = "\xef\xbb\xbf"

// WriteCSV writes t with a UTF-8 BOM, comma-separated, every field quoted.
// Spreadsheet software opens the file with the right encoding thanks to the BOM.
func WriteCSV(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return err
	}
	writeLine(bw, t.Headers)
	for _, row := range t.Rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = cellText(v)
		}
		writeLine(bw, fields)
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('"')
		bw.WriteString(strings.ReplaceAll(f, `"`, `""`))
		bw.WriteByte('"')
	}
	bw.WriteString("\r\n")
}
