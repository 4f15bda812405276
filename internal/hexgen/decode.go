package hexgen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Array is a byte array literal read back from a generated file.
type Array struct {
	Name string
	Data []byte
}

// Decode parses the first "unsigned char <name>[] = { ... };" declaration in r.
func Decode(r io.Reader) (Array, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Array{}, err
	}

	const decl = "unsigned char "
	start := bytes.Index(src, []byte(decl))
	if start < 0 {
		return Array{}, fmt.Errorf("no array declaration found")
	}
	rest := src[start+len(decl):]

	open := bytes.Index(rest, []byte("[] = {"))
	if open < 0 {
		return Array{}, fmt.Errorf("malformed array declaration")
	}
	name := strings.TrimSpace(string(rest[:open]))
	body := rest[open+len("[] = {"):]

	end := bytes.Index(body, []byte("};"))
	if end < 0 {
		return Array{}, fmt.Errorf("array %s is not terminated", name)
	}

	var data []byte
	for i, tok := range strings.Split(string(body[:end]), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return Array{}, fmt.Errorf("array %s: token %d %q: %w", name, i, tok, err)
		}
		data = append(data, byte(v))
	}
	return Array{Name: name, Data: data}, nil
}
