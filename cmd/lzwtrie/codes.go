package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kumarlokesh/lzw-trie/internal/lzw"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// document is the JSON form of an encoding. It carries the settings needed
// to decode the codes again.
type document struct {
	Alphabet string     `json:"alphabet"`
	Spec     lzw.Spec   `json:"spec"`
	Codes    []lzw.Code `json:"codes"`
}

func writeCodes(w io.Writer, format string, doc document) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatText:
		values := make([]string, len(doc.Codes))
		for i, c := range doc.Codes {
			values[i] = strconv.FormatUint(uint64(c.Value), 10)
		}
		_, err := fmt.Fprintln(w, strings.Join(values, " "))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// readCodes parses either a JSON document or whitespace separated code
// values. The returned document only carries settings for JSON input.
func readCodes(r io.Reader) (document, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return document{}, false, fmt.Errorf("failed to read codes: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return document{}, false, fmt.Errorf("failed to parse codes: %w", err)
		}
		return doc, true, nil
	}

	var doc document
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return document{}, false, fmt.Errorf("failed to parse code %q: %w", scanner.Text(), err)
		}
		doc.Codes = append(doc.Codes, lzw.Code{Value: uint32(v)})
	}
	return doc, false, scanner.Err()
}
