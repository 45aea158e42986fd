package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/shapewire/shapewire/codec"
	"github.com/shapewire/shapewire/descriptor"
)

var logger = zap.NewNop()

func main() {
	var (
		typeName    = flag.String("type", "", "Sample type to analyze and encode")
		hexInput    = flag.String("hex", "", "Hex-encoded descriptor to decode")
		list        = flag.Bool("list", false, "List sample types and exit")
		limit       = flag.Int("limit", 0, "Arity limit for reconstructed composites (0 = unlimited)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}

	if *interactive {
		if err := runInteractive(*limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		printSamples(os.Stdout)
		return
	}

	if *typeName == "" && *hexInput == "" {
		fmt.Fprintln(os.Stderr, "Usage: shapewire -type <name>  (analyze and encode a sample type)")
		fmt.Fprintln(os.Stderr, "       shapewire -hex <bytes>  (decode an encoded descriptor)")
		fmt.Fprintln(os.Stderr, "       shapewire -list         (list sample types)")
		fmt.Fprintln(os.Stderr, "       shapewire -i            (interactive mode)")
		os.Exit(1)
	}

	if err := run(*typeName, *hexInput, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName, hexInput string, limit int) error {
	if typeName != "" {
		if err := inspectSample(os.Stdout, typeName, limit); err != nil {
			return err
		}
	}
	if hexInput != "" {
		if typeName != "" {
			fmt.Println()
		}
		if err := inspectHex(os.Stdout, hexInput, limit); err != nil {
			return err
		}
	}
	return nil
}

// inspectSample runs a named sample type through the whole pipeline:
// analyze, encode, and reconstruct.
func inspectSample(w io.Writer, name string, limit int) error {
	t, ok := samples[name]
	if !ok {
		return fmt.Errorf("unknown sample type %q (use -list)", name)
	}

	fmt.Fprintf(w, "Type: %s\n", t)

	desc, err := codec.NewReflectAnalyzer().Analyze(t)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logger.Debug("analyzed", zap.String("type", t.String()), zap.Stringer("descriptor", desc))

	fmt.Fprintf(w, "Descriptor: %s\n", desc)
	fmt.Fprintf(w, "\nShape tree:\n%s", renderTree(desc))

	buf, err := codec.NewEncoder(codec.HeapAllocator{}).Encode(desc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	defer buf.Release()
	logger.Debug("encoded", zap.Int("bytes", buf.Len()))

	fmt.Fprintf(w, "\nEncoded (%d bytes): % x\n", buf.Len(), buf.Bytes())

	return printReconstruction(w, desc, limit)
}

// inspectHex decodes a hex-encoded descriptor buffer and reconstructs the
// Go type it describes.
func inspectHex(w io.Writer, input string, limit int) error {
	data, err := parseHex(input)
	if err != nil {
		return fmt.Errorf("parse hex: %w", err)
	}

	desc, n, err := codec.NewDecoder().Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	logger.Debug("decoded", zap.Int("consumed", n), zap.Stringer("descriptor", desc))

	fmt.Fprintf(w, "Descriptor: %s\n", desc)
	fmt.Fprintf(w, "\nShape tree:\n%s", renderTree(desc))
	fmt.Fprintf(w, "\nConsumed %d of %d bytes", n, len(data))
	if n < len(data) {
		fmt.Fprintf(w, " (trailing: % x)", data[n:])
	}
	fmt.Fprintln(w)

	return printReconstruction(w, desc, limit)
}

func printReconstruction(w io.Writer, desc descriptor.Descriptor, limit int) error {
	ctor := codec.NewReflectConstructor()
	if limit > 0 {
		ctor = codec.NewReflectConstructorWithLimit(limit)
	}

	t, err := codec.Construct(desc, ctor)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}

	fmt.Fprintf(w, "\nReconstructed Go type:\n  %s\n", t)
	return nil
}

// parseHex accepts bytes with or without whitespace and an optional 0x
// prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

// renderTree prints one shape per line, indented by nesting depth, with
// the wire tag each node encodes to.
func renderTree(d descriptor.Descriptor) string {
	var b strings.Builder
	writeTree(&b, d, 0)
	return b.String()
}

func writeTree(b *strings.Builder, d descriptor.Descriptor, depth int) {
	indent := strings.Repeat("  ", depth)
	switch d.Kind {
	case descriptor.KindList:
		fmt.Fprintf(b, "%slist (tag 0x%02x)\n", indent, byte(d.Kind))
		if d.Elem != nil {
			writeTree(b, *d.Elem, depth+1)
		}
	case descriptor.KindTuple:
		fmt.Fprintf(b, "%stuple (tag 0x%02x, %d fields)\n", indent, byte(d.Kind), len(d.Fields))
		for _, f := range d.Fields {
			writeTree(b, f, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s%s (tag 0x%02x)\n", indent, d.Kind, byte(d.Kind))
	}
}

func printSamples(w io.Writer) {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Sample types:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, samples[name])
	}
}
