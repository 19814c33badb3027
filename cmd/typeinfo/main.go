package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/oiio-go/typedesc"
	"github.com/oiio-go/typedesc/convert"
	"github.com/oiio-go/typedesc/ustring"
)

func main() {
	var (
		typeStr     = flag.String("type", "", "Type name to inspect (e.g. \"float[3]\")")
		mergeStr    = flag.String("merge", "", "Two or three comma-separated base types to promote")
		convertStr  = flag.String("convert", "", "Conversion spec: <srctype>:<v1,v2,...>:<dsttype>")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		convert.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeStr == "" && *mergeStr == "" && *convertStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: typeinfo -type <name>")
		fmt.Fprintln(os.Stderr, "       typeinfo -merge <base>,<base>[,<base>]")
		fmt.Fprintln(os.Stderr, "       typeinfo -convert <srctype>:<v1,v2,...>:<dsttype>")
		fmt.Fprintln(os.Stderr, "       typeinfo -i  (interactive mode)")
		os.Exit(1)
	}

	if *typeStr != "" {
		if err := showType(*typeStr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *mergeStr != "" {
		if err := showMerge(*mergeStr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *convertStr != "" {
		if err := showConvert(*convertStr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func showType(name string) error {
	t, n := typedesc.ParseType(name)
	if n == 0 {
		return fmt.Errorf("no valid type at the front of %q", name)
	}

	fmt.Printf("Type: %s\n", t)
	fmt.Printf("  base:      %s (%d)\n", t.BaseType, t.BaseType)
	fmt.Printf("  aggregate: %s (%d components)\n", t.Aggregate, t.Aggregate.Components())
	fmt.Printf("  semantics: %s\n", t.VecSemantics)
	fmt.Printf("  arraylen:  %d\n", t.ArrayLen)

	if bs, err := t.BaseSize(); err == nil {
		fmt.Printf("  base size: %d bytes\n", bs)
	}
	if es, err := t.ElementSize(); err == nil {
		fmt.Printf("  elem size: %d bytes\n", es)
	}
	if sz, err := t.Size(); err == nil {
		fmt.Printf("  size:      %d bytes\n", sz)
	} else {
		fmt.Printf("  size:      undefined (%v)\n", err)
	}
	if n < len(name) {
		fmt.Printf("  (consumed %d of %d bytes)\n", n, len(name))
	}
	return nil
}

func showMerge(spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return fmt.Errorf("merge wants two or three base types, got %d", len(parts))
	}
	bases := make([]typedesc.BaseType, len(parts))
	for i, p := range parts {
		t, n := typedesc.ParseType(strings.TrimSpace(p))
		if n == 0 {
			return fmt.Errorf("unknown base type %q", p)
		}
		bases[i] = t.BaseType
	}
	var result typedesc.BaseType
	if len(bases) == 2 {
		result = typedesc.MergeBase(bases[0], bases[1])
	} else {
		result = typedesc.MergeBase3(bases[0], bases[1], bases[2])
	}
	fmt.Printf("%s -> %s\n", spec, result)
	return nil
}

func showConvert(spec string) error {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return fmt.Errorf("convert spec is <srctype>:<v1,v2,...>:<dsttype>")
	}
	src, n := typedesc.ParseType(parts[0])
	if n == 0 {
		return fmt.Errorf("unknown source type %q", parts[0])
	}
	dst, n := typedesc.ParseType(parts[2])
	if n == 0 {
		return fmt.Errorf("unknown destination type %q", parts[2])
	}
	values := strings.Split(parts[1], ",")

	srcBuf, err := encodeValues(src.BaseType, values)
	if err != nil {
		return err
	}
	dstES, err := dst.ElementSize()
	if err != nil {
		return err
	}
	dstBuf := make([]byte, len(values)*dstES)

	if err := convert.Convert(src.ElementType(), srcBuf, dst.ElementType(), dstBuf, len(values)); err != nil {
		return err
	}

	rendered, err := decodeValues(dst.BaseType, dstBuf, len(values))
	if err != nil {
		return err
	}
	fmt.Printf("%s -> %s: %s\n", parts[0], parts[2], strings.Join(rendered, ", "))
	return nil
}

// encodeValues packs scalar literals into a buffer of the given base
// type. Only the scalar kinds useful from a command line are supported.
func encodeValues(base typedesc.BaseType, values []string) ([]byte, error) {
	t := typedesc.NewScalar(base)
	bs, err := t.BaseSize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(values)*bs)
	for i, v := range values {
		v = strings.TrimSpace(v)
		cell := buf[i*bs:]
		switch base {
		case typedesc.Int32:
			x, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, err
			}
			binary.LittleEndian.PutUint32(cell, uint32(int32(x)))
		case typedesc.UInt32:
			x, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return nil, err
			}
			binary.LittleEndian.PutUint32(cell, uint32(x))
		case typedesc.Float:
			x, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return nil, err
			}
			binary.LittleEndian.PutUint32(cell, math.Float32bits(float32(x)))
		case typedesc.Double:
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, err
			}
			binary.LittleEndian.PutUint64(cell, math.Float64bits(x))
		case typedesc.String:
			binary.LittleEndian.PutUint64(cell, ustring.Intern(v).Hash())
		default:
			return nil, fmt.Errorf("unsupported source base type %q for the command line", base)
		}
	}
	return buf, nil
}

// decodeValues renders a converted buffer back to text for display.
func decodeValues(base typedesc.BaseType, buf []byte, n int) ([]string, error) {
	t := typedesc.NewScalar(base)
	bs, err := t.BaseSize()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		cell := buf[i*bs:]
		switch base {
		case typedesc.Int32:
			out[i] = strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(cell))), 10)
		case typedesc.UInt32:
			out[i] = strconv.FormatUint(uint64(binary.LittleEndian.Uint32(cell)), 10)
		case typedesc.Float:
			out[i] = strconv.FormatFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(cell))), 'g', -1, 32)
		case typedesc.String:
			out[i] = strconv.Quote(ustring.UString(binary.LittleEndian.Uint64(cell)).String())
		default:
			return nil, fmt.Errorf("unsupported destination base type %q for the command line", base)
		}
	}
	return out, nil
}
