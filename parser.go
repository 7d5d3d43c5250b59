package procdev

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Section headers as they appear in the kernel listing, matched by exact
// string equality after trailing whitespace is trimmed. A header with
// different casing or extra tokens is treated as a data row.
const (
	characterHeader = "Character devices:"
	blockHeader     = "Block devices:"
)

// parse consumes the listing line by line and populates the forward tables.
// It either succeeds completely or returns the first error encountered;
// callers never observe a partially filled table set.
func parse(r io.Reader) (map[DeviceType]*tablePair, error) {
	tables := map[DeviceType]*tablePair{
		DeviceCharacter: newTablePair(),
		DeviceBlock:     newTablePair(),
	}

	section := noType
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		// A blank line terminates the current section until the next header.
		if line == "" {
			section = noType
			continue
		}
		if line == characterHeader {
			section = DeviceCharacter
			continue
		}
		if line == blockHeader {
			section = DeviceBlock
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: line, Reason: "expected a major number and a driver name"}
		}

		pair, ok := tables[section]
		if !ok {
			return nil, &ParseError{Line: line, Reason: "device entry outside of a recognized section"}
		}

		major, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: line, Reason: "major number is not a decimal integer", Err: err}
		}
		if major < 0 {
			return nil, &ParseError{Line: line, Reason: "major number is negative"}
		}

		// Last entry wins when a major number repeats within a section.
		pair.forward[major] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
