// Package objfile persists assembled 4004 programs to disk in two
// forms: a raw binary memory image (".bin", loaded straight into
// cpu.Processor.ROM) and a structured, human-readable object format
// (".obj") that additionally carries the label table and any pin
// directive, so a monitor session can reload a program and still show
// symbolic names.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"mcs4/cpu"
)

// ObjectFile is everything needed to reload an assembled program and
// keep working with it symbolically: which memory space it targets, its
// bytes, its label table, and an optional initial pin 10 state.
type ObjectFile struct {
	Location string // "rom" or "ram"
	Memory   []byte
	Labels   map[string]int
	Pin10    *bool
}

// WriteBin writes the full memory image as raw bytes, suitable for
// loading directly into cpu.Processor.ROM.
func WriteBin(w io.Writer, memory []byte) error {
	_, err := w.Write(memory)
	return err
}

// ReadBin reads a raw memory image of at most cpu.MemorySize bytes;
// anything beyond that is left unread. A shorter image is returned at
// its own length and is not padded.
func ReadBin(r io.Reader) ([]byte, error) {
	buf := make([]byte, cpu.MemorySize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// WriteObj renders an ObjectFile as line-oriented text:
//
//	location: rom
//	pin: 1
//	label: loop 5
//	label: start 0
//	data: D7 FF 40 05
//
// Labels are written sorted by name.
func WriteObj(w io.Writer, obj *ObjectFile) error {
	bw := bufio.NewWriter(w)

	location := obj.Location
	if location == "" {
		location = "rom"
	}
	if _, err := fmt.Fprintf(bw, "location: %s\n", location); err != nil {
		return err
	}
	if obj.Pin10 != nil {
		v := 0
		if *obj.Pin10 {
			v = 1
		}
		if _, err := fmt.Fprintf(bw, "pin: %d\n", v); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(obj.Labels))
	for name := range obj.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(bw, "label: %s %d\n", name, obj.Labels[name]); err != nil {
			return err
		}
	}

	hex := make([]string, len(obj.Memory))
	for i, b := range obj.Memory {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	if _, err := fmt.Fprintf(bw, "data: %s\n", strings.Join(hex, " ")); err != nil {
		return err
	}

	return bw.Flush()
}

// ReadObj parses the text format WriteObj produces.
func ReadObj(r io.Reader) (*ObjectFile, error) {
	obj := &ObjectFile{Labels: map[string]int{}}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed object file line: %q", line)
		}
		rest = strings.TrimSpace(rest)

		switch key {
		case "location":
			if rest != "rom" && rest != "ram" {
				return nil, fmt.Errorf("malformed location: %q", rest)
			}
			obj.Location = rest
		case "pin":
			v, err := strconv.Atoi(rest)
			if err != nil || (v != 0 && v != 1) {
				return nil, fmt.Errorf("malformed pin value: %q", rest)
			}
			b := v == 1
			obj.Pin10 = &b
		case "label":
			fields := strings.Fields(rest)
			if len(fields) != 2 {
				return nil, fmt.Errorf("malformed label line: %q", line)
			}
			addr, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("malformed label address: %w", err)
			}
			obj.Labels[fields[0]] = addr
		case "data":
			fields := strings.Fields(rest)
			mem := make([]byte, len(fields))
			for i, f := range fields {
				v, err := strconv.ParseUint(f, 16, 8)
				if err != nil {
					return nil, fmt.Errorf("malformed data byte %q: %w", f, err)
				}
				mem[i] = byte(v)
			}
			obj.Memory = mem
		default:
			return nil, fmt.Errorf("unrecognised object file key: %q", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return obj, nil
}
